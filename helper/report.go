package helper

import (
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"sort"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm/clause"
)

type CustomerStats struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	TotalOrders int64     `json:"totalOrders"`
	TotalSpent  float64   `json:"totalSpent"`
	LastVisit   time.Time `json:"lastVisit"`
}

type StatWindows struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Total   float64 `json:"total"`
}

type CountWindows struct {
	Daily   int64 `json:"daily"`
	Weekly  int64 `json:"weekly"`
	Monthly int64 `json:"monthly"`
	Total   int64 `json:"total"`
}

type DashboardStats struct {
	Revenue   StatWindows     `json:"revenue"`
	Orders    CountWindows    `json:"orders"`
	Customers []CustomerStats `json:"customers"`
}

// AggregateOrders folds a tenant's Paid orders into revenue/order
// windows and a per-customer ledger. Customers are keyed by phone and
// fall back to name when the phone is empty; the result is sorted by
// last visit, newest first.
func AggregateOrders(orders []model.Order, now time.Time) DashboardStats {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	oneWeekAgo := startOfDay.AddDate(0, 0, -7)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := DashboardStats{Customers: []CustomerStats{}}
	customers := make(map[string]*CustomerStats)

	for _, order := range orders {
		amount := order.TotalAmount

		stats.Revenue.Total += amount
		stats.Orders.Total++

		if !order.CreatedAt.Before(startOfDay) {
			stats.Revenue.Daily += amount
			stats.Orders.Daily++
		}
		if !order.CreatedAt.Before(oneWeekAgo) {
			stats.Revenue.Weekly += amount
			stats.Orders.Weekly++
		}
		if !order.CreatedAt.Before(startOfMonth) {
			stats.Revenue.Monthly += amount
			stats.Orders.Monthly++
		}

		key := order.CustomerPhone
		if key == "" {
			key = order.CustomerName
		}
		if key == "" {
			continue
		}

		cust, ok := customers[key]
		if !ok {
			cust = &CustomerStats{Name: order.CustomerName, Phone: order.CustomerPhone, LastVisit: order.CreatedAt}
			if cust.Name == "" {
				cust.Name = "Unknown"
			}
			customers[key] = cust
		}
		cust.TotalOrders++
		cust.TotalSpent += amount
		if order.CreatedAt.After(cust.LastVisit) {
			cust.LastVisit = order.CreatedAt
		}
	}

	for _, cust := range customers {
		stats.Customers = append(stats.Customers, *cust)
	}
	sort.Slice(stats.Customers, func(i, j int) bool {
		return stats.Customers[i].LastVisit.After(stats.Customers[j].LastVisit)
	})

	return stats
}

var snapshotScheduler gocron.Scheduler

// SnapshotDailyRevenue rolls up yesterday's Paid orders per tenant.
func SnapshotDailyRevenue() {
	log.Println("[CRON] SnapshotDailyRevenue triggered")

	db := database.DB
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var rows []model.RevenueSnapshot
	err := db.Raw(`
        SELECT account_id, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS orders_count
        FROM orders
        WHERE status = ? AND paid_at >= ? AND paid_at < ?
        GROUP BY account_id
    `, constants.ORDER_PAID, dayStart, dayEnd).Scan(&rows).Error
	if err != nil {
		log.Printf("revenue snapshot query failed: %v", err)
		return
	}

	for i := range rows {
		rows[i].Date = dayStart
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"revenue", "orders_count"}),
		}).Create(&rows[i]).Error
		if err != nil {
			log.Printf("failed to upsert revenue snapshot for account %d: %v", rows[i].AccountId, err)
		}
	}
}

func StartRevenueSnapshotScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	snapshotScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(SnapshotDailyRevenue),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("revenue snapshot scheduler started (00:05)")
}

func StopRevenueSnapshotScheduler() {
	if snapshotScheduler != nil {
		snapshotScheduler.Shutdown()
	}
}
