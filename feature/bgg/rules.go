package bgg

import (
	"game-catalog/core/reconcile"
	"game-catalog/feature/bgg/models"
)

// Table returns the merge precedence for games: BoardGameGeek owns the facts,
// curators own the review state.
func Table() *reconcile.Table[models.Game] {
	return reconcile.NewTable(func(g *models.Game) int64 { return g.BGGID },
		reconcile.Name("name", func(g *models.Game) *string { return &g.Name }),
		reconcile.Number("yearPublished", func(g *models.Game) **int { return &g.YearPublished }),
		reconcile.Number("minPlayers", func(g *models.Game) **int { return &g.MinPlayers }),
		reconcile.Number("maxPlayers", func(g *models.Game) **int { return &g.MaxPlayers }),
		reconcile.Number("minPlayingTime", func(g *models.Game) **int { return &g.MinPlayingTime }),
		reconcile.Number("maxPlayingTime", func(g *models.Game) **int { return &g.MaxPlayingTime }),
		reconcile.Number("minAge", func(g *models.Game) **int { return &g.MinAge }),
		reconcile.Number("bggRating", func(g *models.Game) **float64 { return &g.Rating }),
		reconcile.Number("bggRatingUsers", func(g *models.Game) **int { return &g.RatingUsers }),
		reconcile.Number("bggRank", func(g *models.Game) **int { return &g.Rank }),
		reconcile.Number("parentGameID", func(g *models.Game) **int64 { return &g.ParentGameID }),
		reconcile.Name("gameType", func(g *models.Game) *string { return &g.GameType }),
		reconcile.List("publishers", func(g *models.Game) *[]string { return &g.Publishers }),
		reconcile.List("designers", func(g *models.Game) *[]string { return &g.Designers }),
		reconcile.List("categories", func(g *models.Game) *[]string { return &g.Categories }),
		reconcile.List("mechanisms", func(g *models.Game) *[]string { return &g.Mechanisms }),
		reconcile.List("expansionIDs", func(g *models.Game) *[]int64 { return &g.ExpansionIDs }),
		reconcile.Text("description", func(g *models.Game) *string { return &g.Description }),
		reconcile.Text("imageURL", func(g *models.Game) *string { return &g.ImageURL }),
		reconcile.Text("thumbnailURL", func(g *models.Game) *string { return &g.ThumbnailURL }),
		reconcile.Curated[models.Game]("reviewState"),
	)
}
