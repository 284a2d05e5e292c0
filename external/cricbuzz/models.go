package cricbuzz

// Upstream payloads. Only the fields the views read are modelled; the rest travel as raw JSON.

// Match is the match detail payload from /match/{id}.
type Match struct {
	MatchID ID            `json:"match_id"`
	Header  *matchHeader  `json:"header"`
	Venue   *matchVenue   `json:"venue"`
	Team1   *MatchTeam    `json:"team1"`
	Team2   *MatchTeam    `json:"team2"`
	Players []MatchPlayer `json:"players"`
}

type matchHeader struct {
	StartTime ID `json:"start_time"`
}

type matchVenue struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type MatchTeam struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Squad []ID   `json:"squad"`
	Bench []ID   `json:"squad_bench"`
}

type MatchPlayer struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type liveMatchesEnvelope struct {
	Matches []liveListEntry `json:"matches"`
}

// liveListEntry decodes only match_id up front. The rest of the entry is kept
// as bytes so a sibling match with odd scalars cannot fail the whole list.
type liveListEntry struct {
	MatchID ID
	body    []byte
}

type liveMatch struct {
	MatchID ID               `json:"match_id"`
	Team1   *teamRef         `json:"team1"`
	Team2   *teamRef         `json:"team2"`
	BatTeam *liveInningsTeam `json:"bat_team"`
	BowTeam *liveInningsTeam `json:"bow_team"`
	Batsmen []liveBatsman    `json:"batsman"`
	Bowlers []liveBowler     `json:"bowler"`
}

type teamRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type liveInningsTeam struct {
	ID      ID            `json:"id"`
	Innings []liveInnings `json:"innings"`
}

type liveInnings struct {
	ID      ID    `json:"id"`
	Score   Count `json:"score"`
	Wickets Count `json:"wkts"`
	Overs   Overs `json:"overs"`
	Decl    *Flag `json:"decl"`
}

type liveBatsman struct {
	Name  string `json:"name"`
	Runs  Count  `json:"r"`
	Balls Count  `json:"b"`
	Fours Count  `json:"4s"`
	Sixes Count  `json:"6s"`
}

type liveBowler struct {
	Name    string `json:"name"`
	Overs   Overs  `json:"o"`
	Maidens Count  `json:"m"`
	Runs    Count  `json:"r"`
	Wickets Count  `json:"w"`
}

type commentaryEnvelope struct {
	Lines []commentaryLine `json:"comm_lines"`
}

// commentaryLine records whether "comm" was present at all; a null comm still counts.
type commentaryLine struct {
	HasComm bool
	Comm    *string
	Over    *Overs
}

type scorecardEnvelope struct {
	Innings []scorecardInnings `json:"Innings"`
}

type scorecardInnings struct {
	BatTeamID  ID              `json:"bat_team_id"`
	BowlTeamID ID              `json:"bowl_team_id"`
	Extras     *rawExtras      `json:"extras"`
	Batsmen    []scorecardBat  `json:"batsmen"`
	Bowlers    []scorecardBowl `json:"bowlers"`
	FOW        []scorecardWkt  `json:"fow"`
}

type rawExtras struct {
	Total   *Count `json:"t"`
	Byes    *Count `json:"b"`
	LegByes *Count `json:"lb"`
	Wides   *Count `json:"wd"`
	NoBalls *Count `json:"nb"`
	Penalty *Count `json:"p"`
}

type scorecardBat struct {
	ID        ID      `json:"id"`
	Runs      Count   `json:"r"`
	Balls     Count   `json:"b"`
	Fours     Count   `json:"4s"`
	Sixes     Count   `json:"6s"`
	Dismissal *string `json:"out_desc"`
}

type scorecardBowl struct {
	ID      ID    `json:"id"`
	Overs   Overs `json:"o"`
	Maidens Count `json:"m"`
	Runs    Count `json:"r"`
	Wickets Count `json:"w"`
	Wides   Count `json:"wd"`
	NoBalls Count `json:"n"`
}

type scorecardWkt struct {
	ID     ID     `json:"id"`
	Number *Count `json:"wkt_nbr"`
	Score  *Count `json:"score"`
	Overs  *Overs `json:"over"`
}

// Views returned to callers. Nullable fields are ones the upstream may leave out.

type TeamSquad struct {
	Name  string   `json:"name"`
	Squad []string `json:"squad"`
	Bench []string `json:"squad_bench"`
}

type LiveScore struct {
	Live    bool         `json:"live"`
	Batting *BattingSide `json:"batting,omitempty"`
	Bowling *BowlingSide `json:"bowling,omitempty"`
}

type InningsScore struct {
	InningNum int    `json:"inning_num"`
	Runs      int    `json:"runs"`
	Wickets   int    `json:"wickets"`
	Overs     string `json:"overs"`
	Declared  *bool  `json:"declare"`
}

type BattingSide struct {
	Team    string         `json:"team"`
	Score   []InningsScore `json:"score"`
	Batsmen []LiveBatsman  `json:"batsman"`
}

type LiveBatsman struct {
	Name  string `json:"name"`
	Runs  int    `json:"runs"`
	Balls int    `json:"balls"`
	Fours int    `json:"fours"`
	Sixes int    `json:"six"`
}

type BowlingSide struct {
	Team    string         `json:"team"`
	Score   []InningsScore `json:"score"`
	Bowlers []LiveBowler   `json:"bowler"`
}

type LiveBowler struct {
	Name    string `json:"name"`
	Overs   string `json:"overs"`
	Maidens int    `json:"maidens"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

type Commentary struct {
	Lines []CommentaryLine `json:"commentary"`
}

type CommentaryLine struct {
	Text *string `json:"comm"`
	Over *string `json:"over"`
}

type Scorecard struct {
	Innings []InningsCard `json:"scorecard"`
}

type InningsCard struct {
	BatTeam     string         `json:"batteam,omitempty"`
	BowlTeam    string         `json:"bowlteam"`
	Extras      Extras         `json:"extras"`
	BatCard     []BatCardEntry `json:"batcard"`
	BowlCard    []BowlCardRow  `json:"bowlcard"`
	FallWickets []FallOfWicket `json:"fall_wickets"`
}

type Extras struct {
	Total   *int `json:"total"`
	Byes    *int `json:"byes"`
	LegByes *int `json:"lbyes"`
	Wides   *int `json:"wides"`
	NoBalls *int `json:"noballs"`
	Penalty *int `json:"penalty"`
}

type BatCardEntry struct {
	Name      string  `json:"name"`
	Runs      int     `json:"runs"`
	Balls     int     `json:"balls"`
	Fours     int     `json:"fours"`
	Sixes     int     `json:"six"`
	Dismissal *string `json:"dismissal"`
}

type BowlCardRow struct {
	Name    string `json:"name"`
	Overs   string `json:"overs"`
	Maidens int    `json:"maidens"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Wides   int    `json:"wides"`
	NoBalls int    `json:"nballs"`
}

type FallOfWicket struct {
	Name         string  `json:"name"`
	WicketNumber *int    `json:"wkt_num"`
	Score        *int    `json:"score"`
	Overs        *string `json:"overs"`
}
