package analytics

func portfolio(assets []Asset) Investments {
	inv := Investments{AssetCount: len(assets)}
	for _, a := range assets {
		inv.TotalPortfolioValue += a.Value
		inv.TotalCostBasis += a.CostBasis
	}
	inv.TotalGainLoss = inv.TotalPortfolioValue - inv.TotalCostBasis
	if inv.TotalCostBasis > 0 {
		inv.ReturnPercentage = inv.TotalGainLoss / inv.TotalCostBasis * 100
	}
	return inv
}
