package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/legenre/internal/domain"
	"github.com/heartmarshall/legenre/internal/quiz"
	"github.com/heartmarshall/legenre/internal/service/lookup"
)

type wordSource interface {
	Lookup(ctx context.Context, word string) (*lookup.Result, error)
	Random(ctx context.Context) (*lookup.RandomResult, error)
}

const help = `m / f    answer masculine / feminine
?word    look a word up
*        toggle the current word as favorite
r        recent searches
l        list favorites
q        quit`

type game struct {
	words     wordSource
	session   *quiz.Session
	recent    quiz.RecentSearches
	favorites quiz.Favorites
	in        *bufio.Scanner
	out       io.Writer
	current   *lookup.RandomResult
}

func newGame(words wordSource, st quiz.State, in io.Reader, out io.Writer) *game {
	return &game{
		words:     words,
		session:   quiz.NewSession(st.Progress),
		recent:    st.Recent,
		favorites: st.Favorites,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

func (g *game) state() quiz.State {
	return quiz.State{
		Progress:  g.session.Progress,
		Recent:    g.recent,
		Favorites: g.favorites,
	}
}

// run plays until q, end of input or ctx cancellation.
func (g *game) run(ctx context.Context) error {
	fmt.Fprintln(g.out, help)
	if err := g.next(ctx); err != nil {
		return err
	}

	for g.in.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(g.in.Text())

		switch {
		case line == "":
			continue
		case line == "q":
			return nil
		case line == "m" || line == "f":
			if err := g.answer(ctx, domain.Gender(line)); err != nil {
				return err
			}
		case strings.HasPrefix(line, "?"):
			if err := g.search(ctx, strings.TrimPrefix(line, "?")); err != nil {
				return err
			}
		case line == "*":
			g.toggleFavorite()
		case line == "r":
			fmt.Fprintf(g.out, "recent: %s\n", strings.Join(g.recent, ", "))
		case line == "l":
			g.listFavorites()
		default:
			fmt.Fprintln(g.out, help)
		}
	}
	return g.in.Err()
}

func (g *game) next(ctx context.Context) error {
	res, err := g.words.Random(ctx)
	if errors.Is(err, domain.ErrIndexEmpty) {
		return fmt.Errorf("no words to quiz on: %w", err)
	}
	if err != nil {
		return err
	}
	g.current = res
	fmt.Fprintf(g.out, "\n%s  [%s] lives %d  streak %d\n> %s ?\n",
		g.badge(), g.xpBar(), g.session.Lives, g.session.Streak, res.Word)
	return nil
}

func (g *game) answer(ctx context.Context, guess domain.Gender) error {
	if g.current == nil {
		return nil
	}

	out := g.session.Answer(g.current.Entries, guess)
	if out.Correct {
		fmt.Fprintf(g.out, "Correct! +%d XP\n", out.XPGained)
		if out.LeveledUp {
			fmt.Fprintf(g.out, "Level up! You are now a %s.\n", g.session.Progress.Title())
		}
	} else {
		fmt.Fprintf(g.out, "Wrong! %s is %s.\n", g.current.Word, describe(g.current.Entries))
		if out.GameOver {
			fmt.Fprintln(g.out, "Game over! You ran out of lives. Starting a new round.")
			g.session.Restart()
		}
	}
	return g.next(ctx)
}

func (g *game) search(ctx context.Context, word string) error {
	res, err := g.words.Lookup(ctx, word)
	if errors.Is(err, domain.ErrValidation) {
		fmt.Fprintln(g.out, "usage: ?word")
		return nil
	}
	if err != nil {
		return err
	}

	g.recent = g.recent.Add(res.Word)
	if !res.Found {
		fmt.Fprintf(g.out, "%s: not found\n", res.Word)
		return nil
	}

	suffix := ""
	if res.Source == lookup.SourceFallback {
		suffix = " (wiktionary)"
	}
	fmt.Fprintf(g.out, "%s: %s%s\n", res.Word, describe(res.Entries), suffix)
	return nil
}

func (g *game) toggleFavorite() {
	if g.current == nil {
		return
	}
	var on bool
	g.favorites, on = g.favorites.Toggle(quiz.Favorite{
		Word:    g.current.Word,
		Genders: gendersOf(g.current.Entries),
	})
	if on {
		fmt.Fprintf(g.out, "Added %q to favorites\n", g.current.Word)
	} else {
		fmt.Fprintf(g.out, "Removed %q from favorites\n", g.current.Word)
	}
}

func (g *game) listFavorites() {
	if len(g.favorites) == 0 {
		fmt.Fprintln(g.out, "No favorites yet.")
		return
	}
	for _, f := range g.favorites {
		labels := make([]string, 0, len(f.Genders))
		for _, gd := range f.Genders {
			labels = append(labels, strings.ToUpper(gd.String()))
		}
		fmt.Fprintf(g.out, "  %s %s\n", f.Word, strings.Join(labels, "/"))
	}
}

func (g *game) badge() string {
	p := g.session.Progress
	return fmt.Sprintf("Lvl %d %s", p.Level, p.Title())
}

func (g *game) xpBar() string {
	p := g.session.Progress
	return fmt.Sprintf("%d / %d XP", p.XP, p.XPForNextLevel())
}

func gendersOf(entries []domain.LexicalEntry) []domain.Gender {
	var set domain.GenderSet
	for _, e := range entries {
		set.Add(e.Gender)
	}
	return set.Genders()
}

func describe(entries []domain.LexicalEntry) string {
	gs := gendersOf(entries)
	labels := make([]string, 0, len(gs))
	for _, gd := range gs {
		labels = append(labels, gd.Label())
	}
	if len(labels) == 0 {
		return "unknown"
	}
	return strings.Join(labels, " or ")
}
