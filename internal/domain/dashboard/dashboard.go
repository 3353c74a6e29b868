package dashboard

// Summary é o resumo financeiro do mês de referência.
type Summary struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpense     float64 `json:"totalExpense"`
	MonthNet         float64 `json:"monthNet"`
	SavingsRate      float64 `json:"savingsRate"`
	TotalBalance     float64 `json:"totalBalance"`
	InvestmentsValue float64 `json:"investmentsValue"`
	OpenDebts        float64 `json:"openDebts"`
	NetWorth         float64 `json:"netWorth"`
}
