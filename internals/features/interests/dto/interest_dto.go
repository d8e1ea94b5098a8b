package dto

import (
	"errors"

	"mahasiswa_backend/internals/features/interests/catalog"
	"mahasiswa_backend/internals/features/interests/recommendation"
)

var ErrNullInterest = errors.New("interests: null item in list")

// UpdateInterestsRequest: kedua field wajib ada dan berupa array string.
// Array kosong tetap valid. Elemen pointer supaya null bisa dibedakan dari "".
type UpdateInterestsRequest struct {
	HardSkills []*string `json:"hard_skills" validate:"required"`
	SoftSkills []*string `json:"soft_skills" validate:"required"`
}

// ToProfile gagal dengan ErrNullInterest kalau ada elemen null.
func (r UpdateInterestsRequest) ToProfile() (recommendation.InterestProfile, error) {
	hard, err := derefAll(r.HardSkills)
	if err != nil {
		return recommendation.InterestProfile{}, err
	}
	soft, err := derefAll(r.SoftSkills)
	if err != nil {
		return recommendation.InterestProfile{}, err
	}
	return recommendation.InterestProfile{HardSkills: hard, SoftSkills: soft}, nil
}

func derefAll(items []*string) ([]string, error) {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == nil {
			return nil, ErrNullInterest
		}
		out = append(out, *it)
	}
	return out, nil
}

type InterestsResponse struct {
	UserInterests    recommendation.InterestProfile `json:"user_interests"`
	AvailableOptions catalog.SkillOptions           `json:"available_options"`
}

type RecommendResponse struct {
	Recommendations []recommendation.Recommendation `json:"recommendations"`
	Fallback        bool                            `json:"fallback"`
}

// StoredInterests: kolom NULL (minat belum pernah diisi) dibaca sebagai list kosong.
func StoredInterests(hard, soft []string) recommendation.InterestProfile {
	if hard == nil {
		hard = []string{}
	}
	if soft == nil {
		soft = []string{}
	}
	return recommendation.InterestProfile{HardSkills: hard, SoftSkills: soft}
}
