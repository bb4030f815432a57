package http

import (
	"time"

	"pharma-search-srv/internal/analytics"
)

type listPopularReq struct {
	Days  int `form:"days" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (r listPopularReq) toInput() analytics.ListPopularInput {
	return analytics.ListPopularInput{Days: r.Days, Limit: r.Limit}
}

type listPopularResp struct {
	Since   time.Time          `json:"since"`
	Queries []popularQueryResp `json:"queries"`
}

type popularQueryResp struct {
	Query      string    `json:"query"`
	Count      int       `json:"count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

func (h *handler) newListPopularResp(output analytics.ListPopularOutput) listPopularResp {
	resp := listPopularResp{
		Since:   output.Since,
		Queries: make([]popularQueryResp, len(output.Queries)),
	}
	for i, q := range output.Queries {
		resp.Queries[i] = popularQueryResp{Query: q.Query, Count: q.Count, LastSeenAt: q.LastSeenAt}
	}
	return resp
}
