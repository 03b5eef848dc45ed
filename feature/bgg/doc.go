// Package bgg implements the BoardGameGeek source.
//
// BoardGameGeek serves game facts through its XML game-data API:
//
//	http://www.boardgamegeek.com/xmlapi/boardgame/<id>?stats=1
//
// Several identifiers can be comma-joined into one request, so this is the only
// batch-capable source. Parse handles single-game documents and ParseBatch handles
// multi-game ones; both return typed errors from core/errs (NotFound for an
// unknown identifier, Malformed for a broken document).
//
// Expansions are recognised from an inbound <boardgameexpansion> link, which points
// at the base game and becomes ParentGameID. Outbound links fill ExpansionIDs.
//
// # HTTP Endpoints
//
//   - GET /external/bggdata?bggid=&source=bgg|db|hybrid&batch=&sync=n|y
//   - PUT, POST, DELETE /external/bggdata
package bgg
