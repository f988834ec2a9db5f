package httpapi

import (
	pugService "github.com/KirkDiggler/pugbot/internal/services/pug"
)

type playerResponse struct {
	ID      string   `json:"id"`
	Roles   []string `json:"roles"`
	Captain bool     `json:"captain,omitempty"`
}

type roleNeedResponse struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type needResponse struct {
	Captains  int                `json:"captains"`
	Roles     []roleNeedResponse `json:"roles"`
	Satisfied bool               `json:"satisfied"`
}

type slotResponse struct {
	Role     string `json:"role"`
	PlayerID string `json:"player_id"`
}

type teamResponse struct {
	Color   string         `json:"color"`
	Captain string         `json:"captain"`
	Picks   []slotResponse `json:"picks"`
}

type draftResponse struct {
	Captains       []string         `json:"captains"`
	Teams          []teamResponse   `json:"teams"`
	PickingTeam    int              `json:"picking_team"`
	PickingCaptain string           `json:"picking_captain"`
	Staged         []playerResponse `json:"staged"`
}

type statusResponse struct {
	ChannelID    string           `json:"channel_id"`
	Unstaged     []playerResponse `json:"unstaged"`
	Need         *needResponse    `json:"need"`
	Draft        *draftResponse   `json:"draft,omitempty"`
	StagePending bool             `json:"stage_pending"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newStatusResponse(out *pugService.StatusOutput) *statusResponse {
	return &statusResponse{
		ChannelID:    out.ChannelID,
		Unstaged:     newPlayerResponses(out.Unstaged),
		Need:         newNeedResponse(out.Need),
		Draft:        newDraftResponse(out.Draft),
		StagePending: out.StagePending,
	}
}

func newPlayerResponses(players []pugService.PlayerView) []playerResponse {
	resp := make([]playerResponse, 0, len(players))
	for _, p := range players {
		roles := p.Roles
		if roles == nil {
			roles = []string{}
		}
		resp = append(resp, playerResponse{ID: p.ID, Roles: roles, Captain: p.Captain})
	}
	return resp
}

func newNeedResponse(need *pugService.NeedView) *needResponse {
	if need == nil {
		return nil
	}

	roles := make([]roleNeedResponse, 0, len(need.Roles))
	for _, r := range need.Roles {
		roles = append(roles, roleNeedResponse{Role: r.Role, Count: r.Count})
	}

	return &needResponse{
		Captains:  need.Captains,
		Roles:     roles,
		Satisfied: need.Satisfied(),
	}
}

func newDraftResponse(draft *pugService.DraftView) *draftResponse {
	if draft == nil {
		return nil
	}

	resp := &draftResponse{
		Captains:       draft.Captains[:],
		Teams:          make([]teamResponse, 0, len(draft.Teams)),
		PickingTeam:    draft.PickingTeam,
		PickingCaptain: draft.PickingCaptain,
		Staged:         newPlayerResponses(draft.Staged),
	}

	for _, team := range draft.Teams {
		picks := make([]slotResponse, 0, len(team.Picks))
		for _, slot := range team.Picks {
			picks = append(picks, slotResponse{Role: slot.Role, PlayerID: slot.PlayerID})
		}
		resp.Teams = append(resp.Teams, teamResponse{
			Color:   team.Color,
			Captain: team.Captain,
			Picks:   picks,
		})
	}

	return resp
}
