package main

import (
	"fmt"
	"os"

	"github.com/adupulse/adupulse/cmd"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "rankings":
		cmd.Rankings(os.Args[2:])
	case "scorecard":
		cmd.Scorecard(os.Args[2:])
	case "compliance":
		cmd.Compliance(os.Args[2:])
	case "production":
		cmd.Production(os.Args[2:])
	case "export":
		cmd.Export(os.Args[2:])
	case "fetch":
		cmd.Fetch(os.Args[2:])
	case "report":
		cmd.Report(os.Args[2:])
	case "web":
		cmd.Web(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: adupulse <command>\n\nCommands:\n  rankings    Rank towns by ADU permitting friction\n  scorecard   Print the scorecard for a single town\n  compliance  Bylaw consistency analysis (statewide or per town)\n  production  Housing-production survey totals\n  export      Write town or permit data as CSV\n  fetch       Download live permit rows from the hosted permit table\n  report      Render the statewide PDF report\n  web         Start the interactive web dashboard\n")
}
