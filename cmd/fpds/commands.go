package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/npillmayer/fpds/memo"
	"github.com/npillmayer/fpds/persistent/bst"
	"github.com/npillmayer/fpds/persistent/list"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var cmdTree = &cli.Command{
	Name:      "tree",
	Usage:     "insert values into a search tree and print it",
	ArgsUsage: "[<value> ...]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "ascending",
			Usage: "insert 1…n in ascending order",
		},
		&cli.IntFlag{
			Name:  "random",
			Usage: "insert 1…n in random order",
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed for --random",
			Value:   1,
			EnvVars: []string{"FPDS_SEED"},
		},
		&cli.IntFlag{
			Name:    "factor",
			Usage:   "factor of the re-balancing threshold",
			Value:   bst.DefaultRebalanceFactor,
			EnvVars: []string{"FPDS_REBALANCE_FACTOR"},
		},
		&cli.BoolFlag{
			Name:  "balance",
			Usage: "balance the tree explicitly before printing",
		},
	},
	Action: runTree,
}

func runTree(cctx *cli.Context) error {
	values, err := intArgs(cctx.Args().Slice())
	if err != nil {
		return err
	}
	if n := cctx.Int("ascending"); n > 0 {
		values = oneTo(n)
	} else if n := cctx.Int("random"); n > 0 {
		values = oneTo(n)
		gofakeit.New(cctx.Int64("seed")).ShuffleInts(values)
	}
	tree := bst.Immutable[int](bst.RebalanceFactor(cctx.Int("factor")))
	for _, v := range values {
		tree = tree.Insert(v)
	}
	tracer().Infof("inserted %d values, size = %d, height = %d", len(values), tree.Size(), tree.Height())
	if cctx.Bool("balance") {
		tree = tree.Balance()
	}
	fmt.Printf("size = %d, height = %d\n", tree.Size(), tree.Height())
	if tree.Size() <= 64 {
		fmt.Println(tree.String())
		fmt.Print(tree.Print())
	}
	return nil
}

var cmdList = &cli.Command{
	Name:      "list",
	Usage:     "show list operations on a list of integers",
	ArgsUsage: "[<value> ...]",
	Action: func(cctx *cli.Context) error {
		values, err := intArgs(cctx.Args().Slice())
		if err != nil {
			return err
		}
		l := list.Of(values...)
		fmt.Printf("list        = %s\n", l)
		fmt.Printf("reverse     = %s\n", l.Reverse())
		fmt.Printf("concat      = %s\n", l.Concat(list.Of(4, 5, 6)))
		fmt.Printf("squares     = %s\n", list.Map(l, func(n int) int { return n * n }))
		fmt.Printf("even        = %s\n", l.Filter(func(n int) bool { return n%2 == 0 }))
		fmt.Printf("sum         = %d\n", list.Sum(l))
		fmt.Printf("getAt(0)    = %s\n", l.GetAt(0))
		fmt.Printf("getAt(len)  = %s\n", l.GetAt(l.Len()))
		front, rest := l.SplitAt(l.Len() / 2).Decompose()
		fmt.Printf("splitAt     = %s | %s\n", front, rest)
		fmt.Printf("max         = %s\n", list.Max(l))
		return nil
	},
}

var cmdMemo = &cli.Command{
	Name:      "memo",
	Usage:     "call a slow function through a memoizer",
	ArgsUsage: "[<value> ...]",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "duration of a single computation",
			Value: 100 * time.Millisecond,
		},
		&cli.IntFlag{
			Name:  "lru",
			Usage: "bound the cache to this many values (0 = unbounded)",
		},
	},
	Action: func(cctx *cli.Context) error {
		values, err := intArgs(cctx.Args().Slice())
		if err != nil {
			return err
		}
		delay := cctx.Duration("delay")
		slow := func(n int) int {
			time.Sleep(delay)
			return n * n
		}
		f := memo.Memoize(slow)
		if size := cctx.Int("lru"); size > 0 {
			if f, err = memo.MemoizeLRU(size, slow); err != nil {
				return err
			}
		}
		for _, v := range values {
			start := time.Now()
			r := f(v)
			fmt.Printf("f(%d) = %d in %s\n", v, r, time.Since(start).Round(time.Millisecond))
		}
		return nil
	},
}

func intArgs(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q is not an integer", a)
		}
		values = append(values, n)
	}
	return values, nil
}

func oneTo(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}
