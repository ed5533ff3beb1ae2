package seed

import "go-order-board/internal/domain"

// 固定初始数据集：users → orders → offers，按此顺序灌入
var Users = []domain.User{
	{ID: 1, FirstName: "Sergey", LastName: "Ivanov", Age: 32, Email: "s.ivanov@example.com", Role: "customer", Phone: "+79030010101"},
	{ID: 2, FirstName: "Anna", LastName: "Petrova", Age: 27, Email: "a.petrova@example.com", Role: "customer", Phone: "+79030010102"},
	{ID: 3, FirstName: "Dmitry", LastName: "Sokolov", Age: 41, Email: "d.sokolov@example.com", Role: "executor", Phone: "+79030010103"},
	{ID: 4, FirstName: "Elena", LastName: "Volkova", Age: 35, Email: "e.volkova@example.com", Role: "executor", Phone: "+79030010104"},
	{ID: 5, FirstName: "Igor", LastName: "Smirnov", Age: 24, Email: "i.smirnov@example.com", Role: "executor", Phone: "+79030010105"},
	{ID: 6, FirstName: "Olga", LastName: "Kuznetsova", Age: 29, Email: "o.kuznetsova@example.com", Role: "customer", Phone: "+79030010106"},
}

var Orders = []domain.Order{
	{ID: 1, Name: "Assemble a wardrobe", Description: "IKEA PAX, parts delivered, tools needed", StartDate: "2026-03-01", EndDate: "2026-03-02", Address: "Lenina st. 12, apt. 4", Price: 2500, CustomerID: 1, ExecutorID: 3},
	{ID: 2, Name: "Walk the dog", Description: "Beagle, twice a day for a week", StartDate: "2026-03-03", EndDate: "2026-03-10", Address: "Sadovaya st. 8", Price: 1800, CustomerID: 2, ExecutorID: 4},
	{ID: 3, Name: "Fix the kitchen faucet", Description: "Leaking mixer, replacement part bought", StartDate: "2026-03-05", EndDate: "2026-03-05", Address: "Mira ave. 101, apt. 17", Price: 1200, CustomerID: 1, ExecutorID: 5},
	{ID: 4, Name: "Paint the fence", Description: "About 20 meters, paint provided", StartDate: "2026-04-12", EndDate: "2026-04-15", Address: "Dachnaya st. 3", Price: 4000, CustomerID: 6, ExecutorID: 3},
	{ID: 5, Name: "Move boxes to storage", Description: "12 boxes, ground floor to van", StartDate: "2026-03-20", EndDate: "2026-03-20", Address: "Parkovaya st. 22", Price: 1500, CustomerID: 2, ExecutorID: 5},
}

var Offers = []domain.Offer{
	{ID: 1, OrderID: 1, ExecutorID: 3},
	{ID: 2, OrderID: 1, ExecutorID: 5},
	{ID: 3, OrderID: 2, ExecutorID: 4},
	{ID: 4, OrderID: 3, ExecutorID: 5},
	{ID: 5, OrderID: 4, ExecutorID: 3},
	{ID: 6, OrderID: 4, ExecutorID: 4},
	{ID: 7, OrderID: 5, ExecutorID: 5},
}
