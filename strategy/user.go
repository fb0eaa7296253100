package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mancala/game"
)

// User asks a human for a play: it prints the board, reads bowl indices
// from the input and re-prompts until one of them is playable.
type User struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewUser(in io.Reader, out io.Writer) *User {
	return &User{scanner: bufio.NewScanner(in), out: out}
}

func (u *User) Play(position game.Position) (game.Bowl, bool) {
	options := position.Options()
	if len(options) == 0 {
		return 0, false
	}

	fmt.Fprintf(u.out, "%s\n", position)
	for {
		fmt.Fprint(u.out, "enter a play: ")
		if !u.scanner.Scan() {
			// Input ran dry; there is no play to make.
			return 0, false
		}
		bowl, err := strconv.Atoi(strings.TrimSpace(u.scanner.Text()))
		if err != nil {
			fmt.Fprintln(u.out, "enter a bowl index")
			continue
		}
		for _, option := range options {
			if option == game.Bowl(bowl) {
				return option, true
			}
		}
		fmt.Fprintln(u.out, "not an option")
	}
}
