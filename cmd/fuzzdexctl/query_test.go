package main

import "testing"

func TestQueryCommandRequiresAllKeysInImplicitAnd(t *testing.T) {
	resetGlobalFlags()

	records := []map[string]string{
		{"title": "rust book", "author": "smith"},
		{"title": "rust book", "author": "jones"},
	}
	recordsPath := writeTempJSON(t, "records.json", records)
	queryPath := writeTempJSON(t, "query.json", map[string]string{"title": "rust", "author": "smith"})

	output, err := captureOutput(t, func() error {
		return runQuery([]string{recordsPath, queryPath})
	})
	if err != nil {
		t.Fatalf("runQuery() error = %v\nOutput: %s", err, output)
	}
	assertContains(t, output, []string{"smith"})
	assertNotContains(t, output, []string{"jones"})
}

func TestQueryCommandOrAdmitsEitherBranch(t *testing.T) {
	resetGlobalFlags()

	records := []map[string]string{
		{"title": "rust book", "author": "smith"},
		{"title": "go book", "author": "jones"},
		{"title": "python book", "author": "kim"},
	}
	recordsPath := writeTempJSON(t, "records.json", records)
	query := map[string]any{
		"$or": []any{
			map[string]string{"title": "rust"},
			map[string]string{"author": "jones"},
		},
	}
	queryPath := writeTempJSON(t, "query.json", query)

	output, err := captureOutput(t, func() error {
		return runQuery([]string{recordsPath, queryPath})
	})
	if err != nil {
		t.Fatalf("runQuery() error = %v\nOutput: %s", err, output)
	}
	assertContains(t, output, []string{"smith", "jones"})
	assertNotContains(t, output, []string{"kim"})
}
