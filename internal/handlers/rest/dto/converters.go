package dto

import (
	"time"

	"github.com/Ralet11/pandaApp/internal/entities"
)

func FromOrder(o entities.Order) Order {
	out := Order{
		ID:              o.ID,
		UserID:          o.UserID,
		ShopID:          o.ShopID,
		Price:           o.Price,
		DeliveryFee:     o.DeliveryFee,
		Tip:             o.Tip,
		FinalPrice:      o.FinalPrice,
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status.String(),
		Items:           fromOrderItems(o.Items),
	}
	if o.Courier != nil {
		out.Driver = &Courier{
			Lat:       o.Courier.Lat,
			Lng:       o.Courier.Lng,
			Name:      o.Courier.Name,
			Transport: o.Courier.Transport.String(),
		}
	}
	if !o.CreatedAt.IsZero() {
		out.CreatedAt = o.CreatedAt.Format(time.RFC3339)
	}
	return out
}

func FromOrders(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromCartItems(items []entities.CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, CartItem{
			ID:           it.ID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			PricePerUnit: it.PricePerUnit,
			TotalPrice:   it.TotalPrice,
		})
	}
	return out
}

func FromCartTotals(t entities.CartTotals) CartTotals {
	return CartTotals{
		Subtotal:    t.Subtotal,
		DeliveryFee: t.DeliveryFee,
		TipPercent:  t.TipPercent,
		Tip:         t.Tip,
		Total:       t.Total,
	}
}

func fromOrderItems(items []entities.OrderItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItem{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			PricePerUnit: it.PricePerUnit,
			TotalPrice:   it.TotalPrice,
		})
	}
	return out
}
