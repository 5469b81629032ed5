package models

// Statistics is the aggregated KPI payload the backend computes for a date
// range. The client only derives a few ratios from these counts; no
// aggregation over raw records happens client-side.
type Statistics struct {
	TotalRooms       int64          `json:"totalRooms"`
	RentedRooms      int64          `json:"rentedRooms"`
	TotalBookings    int64          `json:"totalBookings"`
	ApprovedBookings int64          `json:"approvedBookings"`
	ActiveContracts  int64          `json:"activeContracts"`
	TotalRevenue     float64        `json:"totalRevenue"`
	MonthlyRevenue   []MonthRevenue `json:"monthlyRevenue,omitempty"`
}

type MonthRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

// OccupancyRate is rented/total, 0 when no rooms are reported.
func (s *Statistics) OccupancyRate() float64 {
	if s.TotalRooms == 0 {
		return 0
	}
	return float64(s.RentedRooms) / float64(s.TotalRooms)
}

// ApprovalRate is approved/total bookings, 0 when no bookings are reported.
func (s *Statistics) ApprovalRate() float64 {
	if s.TotalBookings == 0 {
		return 0
	}
	return float64(s.ApprovedBookings) / float64(s.TotalBookings)
}
