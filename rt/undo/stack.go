package undo

// Command is a reversible edit. Execute applies it (again), Revert takes it back.
type Command interface {
	Execute()
	Revert()
}

// Stack is a bounded undo/redo history. Commands before the cursor can be
// undone, commands at or after it can be redone. When the history is full the
// oldest command is dropped.
type Stack struct {
	commands  []Command
	cursor    int
	maxStored int
}

func NewStack(maxStored int) *Stack {
	if maxStored < 1 {
		maxStored = 1
	}
	return &Stack{maxStored: maxStored}
}

func (s *Stack) MaxStored() int { return s.maxStored }

// SetMaxStored changes the capacity, evicting the oldest commands if the
// history no longer fits.
func (s *Stack) SetMaxStored(n int) {
	if n < 1 {
		n = 1
	}
	s.maxStored = n
	s.evict()
}

// Insert records an already-applied command. Anything that could have been
// redone is discarded.
func (s *Stack) Insert(cmd Command) {
	if cmd == nil {
		return
	}
	for i := s.cursor; i < len(s.commands); i++ {
		s.commands[i] = nil
	}
	s.commands = append(s.commands[:s.cursor], cmd)
	s.cursor = len(s.commands)
	s.evict()
}

// Execute applies cmd and records it.
func (s *Stack) Execute(cmd Command) {
	if cmd == nil {
		return
	}
	cmd.Execute()
	s.Insert(cmd)
}

func (s *Stack) Undo() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	s.commands[s.cursor].Revert()
	return true
}

func (s *Stack) Redo() bool {
	if s.cursor >= len(s.commands) {
		return false
	}
	s.commands[s.cursor].Execute()
	s.cursor++
	return true
}

// Undoable returns the command Undo would revert next, or nil.
func (s *Stack) Undoable() Command {
	if s.cursor == 0 {
		return nil
	}
	return s.commands[s.cursor-1]
}

// Redoable returns the command Redo would apply next, or nil.
func (s *Stack) Redoable() Command {
	if s.cursor >= len(s.commands) {
		return nil
	}
	return s.commands[s.cursor]
}

func (s *Stack) CanUndo() bool { return s.cursor > 0 }
func (s *Stack) CanRedo() bool { return s.cursor < len(s.commands) }

// Len is the number of stored commands, undoable or not.
func (s *Stack) Len() int { return len(s.commands) }

func (s *Stack) Clear() {
	clear(s.commands)
	s.commands = s.commands[:0]
	s.cursor = 0
}

func (s *Stack) evict() {
	over := len(s.commands) - s.maxStored
	if over <= 0 {
		return
	}
	clear(s.commands[:over])
	s.commands = s.commands[over:]
	s.cursor -= over
	if s.cursor < 0 {
		s.cursor = 0
	}
}
