// Package service contains the view-state logic for the parkmap server.
package service

// CategoryInfo is one entry of the zone dropdown and legend.
type CategoryInfo struct {
	Name    string `json:"name" doc:"Raw zone identifier" example:"E = alter Friedhof"`
	Display string `json:"display" doc:"Human-readable zone name" example:"E Alter Friedhof"`
	Color   string `json:"color" doc:"Assigned color (CSS hex)" example:"#26bd5c"`
}

// ZoneStat is one row of the per-zone statistics table.
type ZoneStat struct {
	Zone     string `json:"zone" doc:"Raw zone identifier" example:"E = alter Friedhof"`
	Segments int    `json:"segments" doc:"Number of street-segment features" example:"42"`
	Points   int    `json:"points" doc:"Number of address-point features" example:"317"`
}
