// Package presenter переводит доменные сущности в DTO ответов REST API.
package presenter

import (
	"recycling/internal/entities"
	"recycling/internal/generated/dto"
)

func User(u *entities.User) dto.User {
	return dto.User{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Phone:         u.Phone,
		Governorate:   u.Governorate,
		Points:        u.Points,
		Rewards:       u.Rewards,
		Co2Saved:      u.CO2Saved.StringFixed(2),
		ItemsRecycled: u.ItemsRecycled,
		CreatedAt:     u.CreatedAt,
	}
}

func Agent(a *entities.Agent) dto.Agent {
	return dto.Agent{
		ID:                   a.ID,
		FirstName:            a.FirstName,
		LastName:             a.LastName,
		Email:                a.Email,
		Phone:                a.Phone,
		Governorate:          a.Governorate,
		IsAvailable:          a.IsAvailable,
		ApprovalStatus:       a.Approval.String(),
		Points:               a.Points,
		Rewards:              a.Rewards,
		TotalOrdersDelivered: a.TotalOrdersDelivered,
		AverageRating:        a.AverageRating,
		CreatedAt:            a.CreatedAt,
	}
}

func Agents(agents []entities.Agent) []dto.Agent {
	result := make([]dto.Agent, 0, len(agents))
	for i := range agents {
		result = append(result, Agent(&agents[i]))
	}
	return result
}

func ItemTypes(itemTypes []entities.ItemType) []dto.ItemType {
	result := make([]dto.ItemType, 0, len(itemTypes))
	for _, it := range itemTypes {
		result = append(result, dto.ItemType{
			ID:            it.ID,
			Name:          it.Name,
			PointsPerUnit: it.PointsPerUnit,
			Co2PerUnit:    it.CO2PerUnit.StringFixed(2),
		})
	}
	return result
}

func Bag(b *entities.Bag) dto.Bag {
	items := make([]dto.BagItem, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, dto.BagItem{
			ID:         item.ID,
			ItemTypeID: item.ItemTypeID,
			ItemType:   item.ItemType,
			Quantity:   item.Quantity,
			Points:     item.Points,
			Co2:        item.CO2.StringFixed(2),
		})
	}

	return dto.Bag{
		ID:          b.ID,
		UserID:      b.UserID,
		Status:      b.Status.String(),
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		Items:       items,
		TotalPoints: b.TotalPoints(),
		TotalCo2:    b.TotalCO2().StringFixed(2),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func Bags(bags []entities.Bag) []dto.Bag {
	result := make([]dto.Bag, 0, len(bags))
	for i := range bags {
		result = append(result, Bag(&bags[i]))
	}
	return result
}

func Assignment(a *entities.Assignment) dto.Assignment {
	return dto.Assignment{
		ID:                a.ID,
		BagID:             a.BagID,
		OfferedAgentID:    a.OfferedAgentID,
		AgentID:           a.AgentID,
		Status:            a.Status.String(),
		UserPhone:         a.UserPhone,
		AgentPhone:        a.AgentPhone,
		RejectionReason:   a.RejectionReason,
		CancelReason:      a.CancelReason,
		DiscrepancyReport: a.DiscrepancyReport,
		AssignedAt:        a.AssignedAt,
		AcceptedAt:        a.AcceptedAt,
		StartedAt:         a.StartedAt,
		CompletedAt:       a.CompletedAt,
	}
}

func Assignments(assignments []entities.Assignment) []dto.Assignment {
	result := make([]dto.Assignment, 0, len(assignments))
	for i := range assignments {
		result = append(result, Assignment(&assignments[i]))
	}
	return result
}

func BagOverview(o *entities.BagOverview) dto.BagOverview {
	overview := dto.BagOverview{
		Bag: Bag(&o.Bag),
	}
	if o.Assignment != nil {
		assignment := Assignment(o.Assignment)
		overview.Assignment = &assignment
	}
	if o.Agent != nil {
		overview.Agent = &dto.AgentSummary{
			ID:            o.Agent.ID,
			Name:          o.Agent.Name,
			Email:         o.Agent.Email,
			Phone:         o.Agent.Phone,
			AverageRating: o.Agent.AverageRating,
		}
	}
	if o.RejectionReason != "" {
		reason := o.RejectionReason
		overview.RejectionReason = &reason
	}
	return overview
}

func Balance(b *entities.Balance) dto.Balance {
	return dto.Balance{
		HolderType: b.Holder.Kind.String(),
		HolderID:   b.Holder.ID,
		Email:      b.Email,
		Points:     b.Points,
		Rewards:    b.Rewards,
	}
}

func Activities(activities []entities.Activity) []dto.Activity {
	result := make([]dto.Activity, 0, len(activities))
	for _, a := range activities {
		result = append(result, dto.Activity{
			ID:        a.ID,
			Title:     a.Title,
			Points:    a.Points,
			Type:      a.Type.String(),
			CreatedAt: a.CreatedAt,
		})
	}
	return result
}

func Notifications(notifications []entities.Notification) []dto.Notification {
	result := make([]dto.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, dto.Notification{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type.String(),
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result
}

func Voucher(v *entities.Voucher) dto.Voucher {
	return dto.Voucher{
		ID:           v.ID,
		Code:         v.Code,
		Amount:       v.Amount,
		IsUsed:       v.IsUsed,
		UsedAt:       v.UsedAt,
		UsedBranchID: v.UsedBranchID,
		QrPayload:    v.QRPayload,
		ExpiresAt:    v.ExpiresAt,
		CreatedAt:    v.CreatedAt,
	}
}

func Vouchers(vouchers []entities.Voucher) []dto.Voucher {
	result := make([]dto.Voucher, 0, len(vouchers))
	for i := range vouchers {
		result = append(result, Voucher(&vouchers[i]))
	}
	return result
}

func VoucherUsages(usages []entities.VoucherUsage) []dto.VoucherUsage {
	result := make([]dto.VoucherUsage, 0, len(usages))
	for _, u := range usages {
		result = append(result, dto.VoucherUsage{
			ID:         u.ID,
			VoucherID:  u.VoucherID,
			Code:       u.Code,
			Amount:     u.Amount,
			BranchID:   u.BranchID,
			BranchName: u.BranchName,
			StoreName:  u.StoreName,
			UsedAt:     u.UsedAt,
		})
	}
	return result
}

func Branch(b *entities.Branch) dto.Branch {
	return dto.Branch{
		ID:        b.ID,
		StoreID:   b.StoreID,
		StoreName: b.StoreName,
		Name:      b.Name,
		Address:   b.Address,
	}
}

func Stores(stores []entities.Store) []dto.Store {
	result := make([]dto.Store, 0, len(stores))
	for _, s := range stores {
		branches := make([]dto.Branch, 0, len(s.Branches))
		for i := range s.Branches {
			branches = append(branches, Branch(&s.Branches[i]))
		}
		result = append(result, dto.Store{ID: s.ID, Name: s.Name, Branches: branches})
	}
	return result
}

func ChatMessage(m *entities.ChatMessage) dto.ChatMessage {
	return dto.ChatMessage{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		SenderType:   m.SenderType.String(),
		SenderEmail:  m.SenderEmail,
		Message:      m.Message,
		CreatedAt:    m.CreatedAt,
	}
}

func ChatMessages(messages []entities.ChatMessage) []dto.ChatMessage {
	result := make([]dto.ChatMessage, 0, len(messages))
	for i := range messages {
		result = append(result, ChatMessage(&messages[i]))
	}
	return result
}

func Rating(r *entities.RatingResult) dto.RatingResponse {
	return dto.RatingResponse{
		ID:                 r.Rating.ID,
		BagID:              r.Rating.BagID,
		AgentID:            r.Rating.AgentID,
		Stars:              r.Rating.Stars,
		Comment:            r.Rating.Comment,
		Created:            r.Created,
		AgentAverageRating: r.AverageRating,
	}
}

// BagItemRequests позиции из тела запроса в доменные.
func BagItemRequests(items []dto.BagItemRequest) []entities.BagItemRequest {
	result := make([]entities.BagItemRequest, 0, len(items))
	for _, item := range items {
		result = append(result, entities.BagItemRequest{
			ItemTypeID: item.ItemTypeID,
			Quantity:   item.Quantity,
		})
	}
	return result
}
