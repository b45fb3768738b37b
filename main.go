package main

import "github.com/fekalegi/property-management-system/cmd"

// @title Property Management API
// @version 1.0
// @description Tenants, house bookings and contact-form submissions.
// @host localhost:5000
// @BasePath /
func main() {
	cmd.Execute()
}
