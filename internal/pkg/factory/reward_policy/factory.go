package reward_policy

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"recycling/internal/entities"
)

const (
	PointsPerReward     int64 = 20
	AgentDeliveryPoints int64 = 10

	MaxItemQuantity int64 = 10000
	MaxBagPoints    int64 = 1_000_000_000
)

var (
	ErrNoItems         = errors.New("at least one item is required")
	ErrInvalidQuantity = errors.New("item quantity must be between 1 and 10000 and the bag must stay within the points limit")
	ErrUnknownItemType = errors.New("unknown item type")
)

// Policy формулы начисления баллов и перевода их в награды.
type Policy struct{}

func New() *Policy {
	return &Policy{}
}

func (p *Policy) RewardsFor(points int64) int64 {
	if points <= 0 {
		return 0
	}
	return points / PointsPerReward
}

func (p *Policy) PointsFor(rewards int64) int64 {
	return rewards * PointsPerReward
}

func (p *Policy) AgentDeliveryPoints() int64 {
	return AgentDeliveryPoints
}

// PriceItem считает баллы и CO2 для позиции заказа.
func (p *Policy) PriceItem(itemType entities.ItemType, quantity int64) entities.BagItem {
	return entities.BagItem{
		ItemTypeID: itemType.ID,
		ItemType:   itemType.Name,
		Quantity:   quantity,
		Points:     itemType.PointsPerUnit * quantity,
		CO2:        itemType.CO2PerUnit.Mul(decimal.NewFromInt(quantity)),
	}
}

// PriceItems проверяет позиции заказа по справочнику и считает баллы и CO2 для каждой.
func (p *Policy) PriceItems(itemTypes []entities.ItemType, requests []entities.BagItemRequest) ([]entities.BagItem, error) {
	if len(requests) == 0 {
		return nil, ErrNoItems
	}

	byID := make(map[int64]entities.ItemType, len(itemTypes))
	for _, itemType := range itemTypes {
		byID[itemType.ID] = itemType
	}

	var total int64
	items := make([]entities.BagItem, 0, len(requests))
	for _, request := range requests {
		if request.Quantity <= 0 || request.Quantity > MaxItemQuantity {
			return nil, ErrInvalidQuantity
		}
		itemType, ok := byID[request.ItemTypeID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownItemType, request.ItemTypeID)
		}
		// делим, а не умножаем: произведение может переполнить int64
		if itemType.PointsPerUnit > (MaxBagPoints-total)/request.Quantity {
			return nil, ErrInvalidQuantity
		}

		item := p.PriceItem(itemType, request.Quantity)
		total += item.Points
		items = append(items, item)
	}
	return items, nil
}
