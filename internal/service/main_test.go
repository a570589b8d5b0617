package service

import (
	"os"
	"testing"

	"github.com/smartcity/weatherlookup/internal/logger"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}
