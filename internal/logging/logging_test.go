package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetupWritesDailyFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := Setup(dir, false)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Info().Str("path", "output/памятка.docx").Msg("document generated")
	closer()

	name := fmt.Sprintf("agent_%s.log", time.Now().Format("20060102"))
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "document generated") {
		t.Fatalf("log entry missing: %s", data)
	}
}

func TestSetupWithoutDir(t *testing.T) {
	logger, closer, err := Setup("", true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer()
	logger.Debug().Msg("console only")
}
