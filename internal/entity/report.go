package entity

import "github.com/shopspring/decimal"

type Summary struct {
	TotalEvents      int                 `json:"totalEvents"`
	EventsByStatus   map[EventStatus]int `json:"eventsByStatus"`
	TotalContracts   int                 `json:"totalContracts"`
	ContractedAmount decimal.Decimal     `json:"contractedAmount"`
	TotalResources   int                 `json:"totalResources"`
	TotalProviders   int                 `json:"totalProviders"`
	TotalPersonnel   int                 `json:"totalPersonnel"`
	UpcomingEvents   []Event             `json:"upcomingEvents"`
}
