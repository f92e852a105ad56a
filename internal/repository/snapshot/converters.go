package snapshot

import (
	"github.com/Ralet11/pandaApp/internal/entities"
	orderstore "github.com/Ralet11/pandaApp/internal/store/order"
)

func toSessionDB(session entities.Session) sessionDB {
	return sessionDB{UserID: session.UserID, Token: session.Token}
}

func toSessionDomain(db sessionDB) entities.Session {
	return entities.Session{UserID: db.UserID, Token: db.Token}
}

func toCartDB(items []entities.CartItem) []cartItemDB {
	out := make([]cartItemDB, 0, len(items))
	for _, item := range items {
		out = append(out, cartItemDB{
			ID:           item.ID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			TotalPrice:   item.TotalPrice,
		})
	}
	return out
}

func toCartDomain(dbs []cartItemDB) []entities.CartItem {
	out := make([]entities.CartItem, 0, len(dbs))
	for _, db := range dbs {
		out = append(out, entities.CartItem{
			ID:           db.ID,
			Name:         db.Name,
			Quantity:     db.Quantity,
			PricePerUnit: db.PricePerUnit,
			TotalPrice:   db.TotalPrice,
		})
	}
	return out
}

func toOrderSnapshotDB(snap orderstore.Snapshot) orderSnapshotDB {
	return orderSnapshotDB{
		Current:  toOrderDB(snap.Current),
		Active:   toOrdersDB(snap.Active),
		Historic: toOrdersDB(snap.Historic),
	}
}

func toOrderSnapshotDomain(db orderSnapshotDB) orderstore.Snapshot {
	return orderstore.Snapshot{
		Current:  toOrderDomain(db.Current),
		Active:   toOrdersDomain(db.Active),
		Historic: toOrdersDomain(db.Historic),
	}
}

func toOrderDB(order entities.Order) orderDB {
	db := orderDB{
		ID:              order.ID,
		UserID:          order.UserID,
		ShopID:          order.ShopID,
		Price:           order.Price,
		DeliveryFee:     order.DeliveryFee,
		Tip:             order.Tip,
		FinalPrice:      order.FinalPrice,
		DeliveryAddress: order.DeliveryAddress,
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt,
	}

	db.Items = make([]orderItemDB, 0, len(order.Items))
	for _, item := range order.Items {
		db.Items = append(db.Items, orderItemDB{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			TotalPrice:   item.TotalPrice,
		})
	}

	if order.Courier != nil {
		db.Courier = &courierDB{
			Lat:       order.Courier.Lat,
			Lng:       order.Courier.Lng,
			Name:      order.Courier.Name,
			Transport: order.Courier.Transport.String(),
		}
	}

	return db
}

func toOrdersDB(orders []entities.Order) []orderDB {
	out := make([]orderDB, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderDB(order))
	}
	return out
}

func toOrderDomain(db orderDB) entities.Order {
	order := entities.Order{
		ID:              db.ID,
		UserID:          db.UserID,
		ShopID:          db.ShopID,
		Price:           db.Price,
		DeliveryFee:     db.DeliveryFee,
		Tip:             db.Tip,
		FinalPrice:      db.FinalPrice,
		DeliveryAddress: db.DeliveryAddress,
		Status:          entities.OrderStatusType(db.Status),
		CreatedAt:       db.CreatedAt,
	}

	order.Items = make([]entities.OrderItem, 0, len(db.Items))
	for _, item := range db.Items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			TotalPrice:   item.TotalPrice,
		})
	}

	if db.Courier != nil {
		order.Courier = &entities.CourierPosition{
			Lat:       db.Courier.Lat,
			Lng:       db.Courier.Lng,
			Name:      db.Courier.Name,
			Transport: entities.CourierTransportType(db.Courier.Transport),
		}
	}

	return order
}

func toOrdersDomain(dbs []orderDB) []entities.Order {
	out := make([]entities.Order, 0, len(dbs))
	for _, db := range dbs {
		out = append(out, toOrderDomain(db))
	}
	return out
}
