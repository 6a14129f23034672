package main

import "testing"

func TestSearchCommand(t *testing.T) {
	resetGlobalFlags()

	records := []map[string]string{
		{"title": "Old Man's War", "author": "John Scalzi"},
		{"title": "The Lock Artist", "author": "Steve Hamilton"},
	}
	recordsPath := writeTempJSON(t, "records.json", records)

	searchKeys = []string{"title", "author"}
	args := []string{recordsPath, "scalzi"}

	output, err := captureOutput(t, func() error {
		return runSearch(args)
	})
	if err != nil {
		t.Fatalf("runSearch() error = %v\nOutput: %s", err, output)
	}
	assertContains(t, output, []string{"Old Man's War"})
	assertNotContains(t, output, []string{"Lock Artist"})
}

func TestSearchCommandJSONOutput(t *testing.T) {
	resetGlobalFlags()
	jsonOut = true

	records := []map[string]string{{"title": "corelib.go"}}
	recordsPath := writeTempJSON(t, "records.json", records)
	searchKeys = []string{"title"}

	output, err := captureOutput(t, func() error {
		return runSearch([]string{recordsPath, "corelib"})
	})
	if err != nil {
		t.Fatalf("runSearch() error = %v\nOutput: %s", err, output)
	}
	assertJSON(t, output)
}

func TestSearchCommandMissingFile(t *testing.T) {
	resetGlobalFlags()
	_, err := captureOutput(t, func() error {
		return runSearch([]string{"/nonexistent/records.json", "pattern"})
	})
	if err == nil {
		t.Fatal("expected an error for a missing records file")
	}
}
