package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/jcferrara/investment-report/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<name>...]

Show documentation for the given topics, or the index when none is given.
"*" shows every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	doc, err := docs.Topics(names...)
	if err != nil {
		return fail(err)
	}
	return render(doc)
}
