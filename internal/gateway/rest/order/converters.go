package order

import (
	"time"

	"github.com/Ralet11/pandaApp/internal/entities"
)

func toDomainList(resp ordersResponseDTO) []entities.Order {
	if len(resp.Orders) == 0 {
		return []entities.Order{}
	}

	orders := make([]entities.Order, 0, len(resp.Orders))
	for i := range resp.Orders {
		order := toDomain(&resp.Orders[i])
		if order != nil {
			orders = append(orders, *order)
		}
	}
	return orders
}

func toDomain(dto *orderDTO) *entities.Order {
	if dto == nil {
		return nil
	}

	order := &entities.Order{
		ID:              dto.ID,
		UserID:          dto.UserID,
		ShopID:          dto.ShopID,
		Price:           dto.Price,
		DeliveryFee:     dto.DeliveryFee,
		Tip:             dto.Tip,
		FinalPrice:      dto.FinalPrice,
		DeliveryAddress: dto.DeliveryAddress,
		Status:          entities.OrderStatusType(dto.Status),
		Items:           toItemsDomain(dto.Items),
	}

	if dto.Driver != nil {
		order.Courier = &entities.CourierPosition{
			Lat:       dto.Driver.Lat,
			Lng:       dto.Driver.Lng,
			Name:      dto.Driver.Name,
			Transport: entities.CourierTransportType(dto.Driver.Transport),
		}
	}

	if createdAt, err := time.Parse(time.RFC3339, dto.CreatedAt); err == nil {
		order.CreatedAt = createdAt
	}

	return order
}

func toItemsDomain(dtos []orderItemDTO) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, entities.OrderItem{
			ProductID:    dto.ProductID,
			Name:         dto.Name,
			Quantity:     dto.Quantity,
			PricePerUnit: dto.Price,
			TotalPrice:   dto.Total,
		})
	}
	return items
}

func toCreateRequest(draft entities.Order) createOrderRequestDTO {
	items := make([]orderItemDTO, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, orderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.PricePerUnit,
			Total:     item.TotalPrice,
		})
	}

	return createOrderRequestDTO{
		ShopID:          draft.ShopID,
		DeliveryAddress: draft.DeliveryAddress,
		Price:           draft.Price,
		DeliveryFee:     draft.DeliveryFee,
		Tip:             draft.Tip,
		FinalPrice:      draft.FinalPrice,
		Items:           items,
	}
}
