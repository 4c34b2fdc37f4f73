package frame

type UpdateFrame struct {
	// DeltaTime is the elapsed time in seconds since the previous frame.
	DeltaTime float64
	// Index counts frames executed by the scheduler, starting at zero.
	Index    uint64
	Commands *Commands
}

func newUpdateFrame(dt float64, index uint64) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Index:     index,
		Commands:  newCommands(),
	}
}
