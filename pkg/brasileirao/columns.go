package brasileirao

// Default file names, relative to the data directory.
const (
	GoalsFile   = "campeonato-brasileiro-gols.csv"
	CardsFile   = "campeonato-brasileiro-cartoes.csv"
	MatchesFile = "campeonato-brasileiro-full.csv"
)

// Goals file: partida_id,rodata,clube,atleta,minuto,tipo_de_gol
const GoalsPlayerCol = 3

// Cards file: partida_id,rodata,clube,cartao,atleta,num_camisa,posicao,minuto
const CardsPlayerCol = 4

// Full match list: ID,rodata,data,hora,mandante,visitante,formacao_mandante,
// formacao_visitante,tecnico_mandante,tecnico_visitante,vencedor,arena,
// mandante_Placar,visitante_Placar,mandante_Estado,visitante_Estado
const (
	MatchDateCol      = 2
	MatchHomeCol      = 4
	MatchAwayCol      = 5
	MatchWinnerCol    = 10
	MatchHomeScoreCol = 12
	MatchAwayScoreCol = 13
	MatchHomeStateCol = 14
)

// Markers searched for in raw lines.
const (
	PenaltyMarker = "Penalty"
	OwnGoalMarker = "Gol Contra"
	YellowCard    = "Amarelo"
	RedCard       = "Vermelho"
	NoWinner      = "-"
)
