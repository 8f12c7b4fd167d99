package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Requested frames per second (the real dt is always measured)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the summary of a game the platform layer cares about.
type GameState struct {
	Score     int  // Displayed score (floor of the accumulated score)
	HighScore int  // Best score known to the tracker
	Started   bool // Whether the current game has been started
	GameOver  bool // Whether the game has ended
}
