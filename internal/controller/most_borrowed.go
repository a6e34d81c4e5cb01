package controller

import (
	"context"
	"fmt"
)

func (i *implementation) mostBorrowed(ctx context.Context) {
	stats, err := i.reports.MostBorrowed(ctx)

	if err != nil {
		fmt.Fprintln(i.out, i.convertErr(err))
		return
	}

	if len(stats) == 0 {
		fmt.Fprintln(i.out, "No borrow transactions recorded yet.")
		return
	}

	fmt.Fprintln(i.out, "Most Borrowed Book(s):")
	for _, stat := range stats {
		fmt.Fprintf(i.out, "- %s (borrowed %d time(s))\n", stat.Title, stat.Count)
	}
}
