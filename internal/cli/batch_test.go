package cli

import "testing"

func TestReportName_DisambiguatesSharedBasenames(t *testing.T) {
	used := make(map[string]int)

	cases := []struct {
		path string
		want string
	}{
		{"a/report.txt", "report.report.json"},
		{"b/report.txt", "report-2.report.json"},
		{"c/report.md", "report-3.report.json"},
		{"a/other.txt", "other.report.json"},
	}
	for _, tc := range cases {
		if got := reportName(used, tc.path); got != tc.want {
			t.Errorf("reportName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
