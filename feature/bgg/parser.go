package bgg

import (
	"bytes"
	"encoding/xml"
	"html"
	"strconv"
	"strings"

	"game-catalog/core/errs"
	"game-catalog/core/utils"
	"game-catalog/feature/bgg/models"

	"golang.org/x/net/html/charset"
)

type xmlDocument struct {
	XMLName xml.Name  `xml:"boardgames"`
	Games   []xmlGame `xml:"boardgame"`
}

type xmlGame struct {
	ObjectID      string     `xml:"objectid,attr"`
	Error         *xmlError  `xml:"error"`
	YearPublished string     `xml:"yearpublished"`
	MinPlayers    string     `xml:"minplayers"`
	MaxPlayers    string     `xml:"maxplayers"`
	PlayingTime   string     `xml:"playingtime"`
	MinPlayTime   string     `xml:"minplaytime"`
	MaxPlayTime   string     `xml:"maxplaytime"`
	Age           string     `xml:"age"`
	Names         []xmlName  `xml:"name"`
	Description   string     `xml:"description"`
	Thumbnail     string     `xml:"thumbnail"`
	Image         string     `xml:"image"`
	Publishers    []xmlLink  `xml:"boardgamepublisher"`
	Designers     []xmlLink  `xml:"boardgamedesigner"`
	Categories    []xmlLink  `xml:"boardgamecategory"`
	Mechanics     []xmlLink  `xml:"boardgamemechanic"`
	Expansions    []xmlLink  `xml:"boardgameexpansion"`
	Ratings       xmlRatings `xml:"statistics>ratings"`
}

type xmlError struct {
	Message string `xml:"message,attr"`
}

type xmlName struct {
	Primary string `xml:"primary,attr"`
	Value   string `xml:",chardata"`
}

type xmlLink struct {
	ObjectID string `xml:"objectid,attr"`
	Inbound  string `xml:"inbound,attr"`
	Value    string `xml:",chardata"`
}

type xmlRatings struct {
	UsersRated string    `xml:"usersrated"`
	Average    string    `xml:"average"`
	Ranks      []xmlRank `xml:"ranks>rank"`
}

type xmlRank struct {
	Type  string `xml:"type,attr"`
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Parse converts a single-game document into a Game.
func Parse(raw []byte) (*models.Game, error) {
	doc, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if len(doc.Games) == 0 {
		return nil, errs.New(errs.NotFound, "the document holds no boardgame entry")
	}
	g := doc.Games[0]
	if g.Error != nil {
		return nil, errs.New(errs.NotFound, "bggid %s: %s", g.ObjectID, g.Error.Message)
	}
	return convert(g)
}

// ParseBatch converts a multi-game document in document order. Entries flagged as
// not found are omitted; a malformed entry fails the whole batch.
func ParseBatch(raw []byte) ([]*models.Game, error) {
	doc, err := decode(raw)
	if err != nil {
		return nil, err
	}

	games := make([]*models.Game, 0, len(doc.Games))
	for _, g := range doc.Games {
		if g.Error != nil {
			continue
		}
		game, err := convert(g)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	if len(games) == 0 {
		return nil, errs.New(errs.NotFound, "the batch document holds no known game")
	}
	return games, nil
}

func decode(raw []byte) (*xmlDocument, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel
	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "the game document is not valid XML")
	}
	return &doc, nil
}

func convert(g xmlGame) (*models.Game, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(g.ObjectID), 10, 64)
	if err != nil || id < 1 {
		return nil, errs.New(errs.Malformed, "boardgame entry has an invalid objectid %q", g.ObjectID)
	}

	game := &models.Game{
		BGGID:        id,
		GameType:     models.TypeBase,
		Description:  description(g.Description),
		ImageURL:     strings.TrimSpace(g.Image),
		ThumbnailURL: strings.TrimSpace(g.Thumbnail),
		Publishers:   names(g.Publishers),
		Designers:    names(g.Designers),
		Categories:   names(g.Categories),
		Mechanisms:   names(g.Mechanics),
	}

	for _, n := range g.Names {
		if n.Primary == "true" {
			game.Name = utils.CollapseSpace(n.Value)
			break
		}
	}
	if game.Name == "" {
		return nil, errs.New(errs.Malformed, "bggid %d has no primary name", id)
	}

	ints := []struct {
		field string
		text  string
		dst   **int
	}{
		{"yearpublished", g.YearPublished, &game.YearPublished},
		{"minplayers", g.MinPlayers, &game.MinPlayers},
		{"maxplayers", g.MaxPlayers, &game.MaxPlayers},
		{"minplaytime", firstNonEmpty(g.MinPlayTime, g.PlayingTime), &game.MinPlayingTime},
		{"maxplaytime", firstNonEmpty(g.MaxPlayTime, g.PlayingTime), &game.MaxPlayingTime},
		{"age", g.Age, &game.MinAge},
		{"usersrated", g.Ratings.UsersRated, &game.RatingUsers},
	}
	for _, f := range ints {
		v, err := utils.ParseOptionalInt(f.text)
		if err != nil {
			return nil, errs.Wrap(errs.Malformed, err, "bggid %d <%s>", id, f.field)
		}
		*f.dst = v
	}

	// An average of 0 with no votes means unrated.
	if game.RatingUsers != nil && *game.RatingUsers > 0 {
		game.Rating, err = utils.ParseOptionalFloat(g.Ratings.Average)
		if err != nil {
			return nil, errs.Wrap(errs.Malformed, err, "bggid %d <average>", id)
		}
	}

	game.Rank, err = rank(g.Ratings.Ranks)
	if err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "bggid %d <rank>", id)
	}

	for _, exp := range g.Expansions {
		eid, err := utils.ParseOptionalInt64(exp.ObjectID)
		if err != nil || eid == nil {
			return nil, errs.New(errs.Malformed, "bggid %d has an invalid expansion objectid %q", id, exp.ObjectID)
		}
		if exp.Inbound == "true" {
			if game.ParentGameID == nil {
				game.ParentGameID = eid
				game.GameType = models.TypeExpansion
			}
			continue
		}
		game.ExpansionIDs = append(game.ExpansionIDs, *eid)
	}

	return game, nil
}

// rank returns the overall board game rank. "Not Ranked" is absent.
func rank(ranks []xmlRank) (*int, error) {
	for _, r := range ranks {
		if r.Type != "subtype" || r.Name != "boardgame" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(r.Value), "Not Ranked") {
			return nil, nil
		}
		return utils.ParseOptionalInt(r.Value)
	}
	return nil, nil
}

func names(links []xmlLink) []string {
	if len(links) == 0 {
		return nil
	}
	out := make([]string, 0, len(links))
	for _, l := range links {
		if v := utils.CollapseSpace(l.Value); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// description turns the escaped markup BGG embeds in <description> into plain text.
func description(s string) string {
	s = html.UnescapeString(s)
	s = strings.NewReplacer("<br/>", "\n", "<br />", "\n", "<br>", "\n").Replace(s)
	return strings.TrimSpace(s)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
