package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CampaignCollection is the document collection campaigns live in.
const CampaignCollection = "campaign"

// TrendingLimit caps the trending campaign listing.
const TrendingLimit = 10

// RaisedField is the only campaign field mutated after creation.
const RaisedField = "raised"

// CampaignInput is the client payload for creating a campaign. Pointers
// distinguish omitted fields from zero values.
type CampaignInput struct {
	Title         *string  `json:"title" validate:"required,min=1"`
	Description   *string  `json:"description"`
	Goal          *float64 `json:"goal" validate:"required,gte=1"`
	Raised        *float64 `json:"raised" validate:"omitempty,gte=0"`
	Category      *string  `json:"category" validate:"required,category"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,http_url"`
	OrganizerName *string  `json:"organizer_name"`
	IsTrending    *bool    `json:"is_trending"`
}

// CampaignFields is the persisted body of a campaign.
type CampaignFields struct {
	Title         string  `json:"title" bson:"title"`
	Description   *string `json:"description" bson:"description"`
	Goal          float64 `json:"goal" bson:"goal"`
	Raised        float64 `json:"raised" bson:"raised"`
	Category      string  `json:"category" bson:"category"`
	ImageURL      *string `json:"image_url" bson:"image_url"`
	OrganizerName *string `json:"organizer_name" bson:"organizer_name"`
	IsTrending    bool    `json:"is_trending" bson:"is_trending"`
}

// Campaign is a stored campaign document.
type Campaign struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	CampaignFields `bson:",inline"`
}

// ValidateCampaign checks in and returns the fields to persist. Raised always
// starts at zero: it only moves through donations.
func ValidateCampaign(in CampaignInput) (CampaignFields, error) {
	if err := validateStruct(in); err != nil {
		return CampaignFields{}, err
	}
	out := CampaignFields{
		Title:         *in.Title,
		Description:   in.Description,
		Goal:          *in.Goal,
		Category:      *in.Category,
		ImageURL:      in.ImageURL,
		OrganizerName: in.OrganizerName,
	}
	if in.IsTrending != nil {
		out.IsTrending = *in.IsTrending
	}
	return out, nil
}
