package admincli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// PrintJSON prints a value as pretty-printed JSON.
func PrintJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// PrintTable renders rows in aligned columns.
func PrintTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// PrintPageFooter summarizes the pagination block under a table.
func PrintPageFooter(p shaheen.Pagination) {
	fmt.Printf("page %d/%d  rows %d-%d of %d\n", p.CurrentPage, p.LastPage, p.From, p.To, p.Total)
}
