package models

import "time"

// Game types.
const (
	TypeBase      = "base"
	TypeExpansion = "expansion"
)

// Game is the canonical BoardGameGeek record. Optional values are nil when the
// source did not provide them, never zero.
type Game struct {
	BGGID          int64    `gorm:"column:bgg_id;primaryKey;autoIncrement:false" json:"bggid"`
	Name           string   `gorm:"column:name;size:255;not null" json:"name"`
	YearPublished  *int     `gorm:"column:year_published" json:"yearPublished,omitempty"`
	MinPlayers     *int     `gorm:"column:min_players" json:"minPlayers,omitempty"`
	MaxPlayers     *int     `gorm:"column:max_players" json:"maxPlayers,omitempty"`
	MinPlayingTime *int     `gorm:"column:min_playing_time" json:"minPlayingTime,omitempty"`
	MaxPlayingTime *int     `gorm:"column:max_playing_time" json:"maxPlayingTime,omitempty"`
	MinAge         *int     `gorm:"column:min_age" json:"minAge,omitempty"`
	Rating         *float64 `gorm:"column:rating" json:"bggRating,omitempty"`
	RatingUsers    *int     `gorm:"column:rating_users" json:"bggRatingUsers,omitempty"`
	Rank           *int     `gorm:"column:bgg_rank" json:"bggRank,omitempty"`
	ParentGameID   *int64   `gorm:"column:parent_game_id" json:"parentGameID,omitempty"`
	GameType       string   `gorm:"column:game_type;size:16" json:"gameType"`
	Description    string   `gorm:"column:description;type:text" json:"description,omitempty"`
	ImageURL       string   `gorm:"column:image_url;size:512" json:"imageURL,omitempty"`
	ThumbnailURL   string   `gorm:"column:thumbnail_url;size:512" json:"thumbnailURL,omitempty"`
	Publishers     []string `gorm:"column:publishers;type:text;serializer:json" json:"publishers,omitempty"`
	Designers      []string `gorm:"column:designers;type:text;serializer:json" json:"designers,omitempty"`
	Categories     []string `gorm:"column:categories;type:text;serializer:json" json:"categories,omitempty"`
	Mechanisms     []string `gorm:"column:mechanisms;type:text;serializer:json" json:"mechanisms,omitempty"`
	ExpansionIDs   []int64  `gorm:"column:expansion_ids;type:text;serializer:json" json:"expansionIDs,omitempty"`
	// ReviewState is maintained by curators and never taken from the source.
	ReviewState string    `gorm:"column:review_state;size:32" json:"reviewState,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName overrides the table name.
func (Game) TableName() string {
	return "bgg_games"
}

// ID returns the record identifier.
func (g *Game) ID() int64 {
	return g.BGGID
}
