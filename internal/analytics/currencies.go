package analytics

// currencyBreakdown partitions balances and transactions by the currency of
// the owning account. Transactions whose account is unknown are left out.
func currencyBreakdown(accounts []Account, txs []Transaction) []CurrencyBreakdown {
	breakdown := []CurrencyBreakdown{}
	index := map[string]int{}
	for _, a := range accounts {
		i, ok := index[a.Currency]
		if !ok {
			i = len(breakdown)
			index[a.Currency] = i
			breakdown = append(breakdown, CurrencyBreakdown{Currency: a.Currency})
		}
		breakdown[i].Balance += a.Balance
	}

	accountCurrency := map[string]string{}
	for _, a := range accounts {
		if _, seen := accountCurrency[a.ID]; !seen {
			accountCurrency[a.ID] = a.Currency
		}
	}

	for _, t := range txs {
		currency, ok := accountCurrency[t.AccountID]
		if !ok {
			continue
		}
		entry := &breakdown[index[currency]]
		switch {
		case t.IsIncome():
			entry.Income += t.Amount
		case t.IsExpense():
			entry.Expenses += t.Magnitude()
		}
	}
	return breakdown
}
