// Command ats runs the applicant tracking backend and its maintenance tasks.
package main

import (
	"os"
)

// @title ATS Backend API
// @version 1.0
// @description Applicant tracking: jobs, applications with resume screening, interviews and offers.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
