package dto

// SummaryResponse holds the upstream total of each resource shown on the dashboard.
type SummaryResponse struct {
	Cruises    int `json:"cruises"`
	Hotels     int `json:"hotels"`
	Charters   int `json:"charters"`
	Departures int `json:"departures"`
	Users      int `json:"users"`
}
