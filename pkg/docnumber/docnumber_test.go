package docnumber

import (
	"testing"
	"time"
)

func TestYearly(t *testing.T) {
	cases := []struct {
		prefix string
		year   int
		seq    int64
		want   string
	}{
		{PrefixOrder, 2025, 1, "PED/2025/00001"},
		{PrefixPurchase, 2025, 42, "OC/2025/00042"},
		{PrefixReceipt, 2024, 99999, "REC/2024/99999"},
		{PrefixIssue, 2025, 123456, "EXP/2025/123456"},
	}
	for _, c := range cases {
		if got := Yearly(c.prefix, c.year, c.seq); got != c.want {
			t.Errorf("Yearly(%s, %d, %d) = %s, esperado %s", c.prefix, c.year, c.seq, got, c.want)
		}
	}
}

func TestMonthly(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		seq   int64
		want  string
	}{
		{2025, time.January, 1, "FAT/2025/01/0001"},
		{2025, time.December, 731, "FAT/2025/12/0731"},
		{2026, time.March, 12345, "FAT/2026/03/12345"},
	}
	for _, c := range cases {
		if got := Monthly(PrefixInvoice, c.year, c.month, c.seq); got != c.want {
			t.Errorf("Monthly(FAT, %d, %d, %d) = %s, esperado %s", c.year, c.month, c.seq, got, c.want)
		}
	}
}
