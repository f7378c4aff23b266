package rating

import "recycling/internal/entities"

func ToDomain(r *RatingDB) *entities.Rating {
	if r == nil {
		return nil
	}
	return &entities.Rating{
		ID:        r.ID,
		BagID:     r.BagID,
		AgentID:   r.AgentID,
		UserID:    r.UserID,
		Stars:     r.Stars,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
