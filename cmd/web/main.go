package main

import "insurance_backend/internal/app"

// @title Insurance backend API
// @version 1.0
// @description Applications, claims, document uploads and admin dashboards.
// @host localhost:4000
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
