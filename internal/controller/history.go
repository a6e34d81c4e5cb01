package controller

import (
	"context"
	"fmt"
)

func (i *implementation) transactionHistory(ctx context.Context) {
	entries, err := i.reports.TransactionHistory(ctx)

	if err != nil {
		fmt.Fprintln(i.out, i.convertErr(err))
		return
	}

	if len(entries) == 0 {
		fmt.Fprintln(i.out, "No transactions have been recorded yet.")
		return
	}

	fmt.Fprintln(i.out, "===== Transaction History =====")
	for _, entry := range entries {
		fmt.Fprintln(i.out, entry)
	}
	fmt.Fprintln(i.out, "==============================")
}
