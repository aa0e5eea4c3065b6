package jsp

// Machine is an exclusive-use resource: at most one step may occupy it
// at any instant.
type Machine struct {
	MachineID MachineID
}
