package main

import "testing"

func TestNormalizeCommandFoldsCase(t *testing.T) {
	resetGlobalFlags()

	output, err := captureOutput(t, func() error {
		return runNormalize([]string{"CaFé"})
	})
	if err != nil {
		t.Fatalf("runNormalize() error = %v", err)
	}
	assertContains(t, output, []string{"café"})
}

func TestNormalizeCommandStripsDiacritics(t *testing.T) {
	resetGlobalFlags()
	normalizeIgnoreDiacrit = true
	defer func() { normalizeIgnoreDiacrit = false }()

	output, err := captureOutput(t, func() error {
		return runNormalize([]string{"café"})
	})
	if err != nil {
		t.Fatalf("runNormalize() error = %v", err)
	}
	assertContains(t, output, []string{"cafe"})
}
