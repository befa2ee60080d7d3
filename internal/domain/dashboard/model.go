package dashboard

// Stats is the landing-page summary block.
type Stats struct {
	PatientsCount     int     `json:"patients_count"`
	AppointmentsToday int     `json:"appointments_today"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	TopTreatment      string  `json:"top_treatment"`
	LowStockCount     int     `json:"low_stock_count"`
}
