package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/cmd"
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/miners"
	"github.com/Aka2210/Hamm-Algorithm/miners/growth"
)

func init() {
	cmd.UsageMessage = "hamm --help"
	cmd.ExtendedMessage = `
hamm - mine all frequent itemsets with fp-growth

$ hamm -o <path> --support=<float> [Global Options] \
    <type> [Type Options] <input-path> \
    <mode> [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [<type> [Type Options]] then
      [<mode> [Mode Options]] and finally <input-path>. Changes in ordering are
      not supported.

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the the documentations for Reporters for details.


Global Options
    -h, --help                view this message
    --types                   show the available types
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<float>         minimum support as a fraction of the
                              transaction count; converted to a count by
                              ceiling (give this or --min-count)
    --min-count=<int>         minimum support as an absolute count
    --max-depth=<int>         cap on the mining recursion depth; mining
                              fails with an error when exceeded
                              (default 0, unbounded)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Types
    itemset                   sets of items, treated as sets of integers

    itemset Example
        $ hamm -o /tmp/hamm --support=.01 \
            itemset ./data/transactions.dat.gz \
            growth

    itemset Options
        -h, help                 view this message
        -l, loader=<loader-name> the loader to use (default int)
        --ratios                 write supports as ratios of the
                                 transaction count (four decimals,
                                 comma separated items) instead of raw
                                 counts

    itemset Loaders
       int                         each line is a transaction
                                   the items are integers
                                   the items are space separated

       int Example file:
            10 1 5 7
            213 2 5 1
            23 1 4 5 7
            3 4 1

Modes
    growth                    the fp-growth algorithm: exhaustively mine
                              every itemset meeting the minimum support.

    growth Options
        --no-single-path      disable the single linear chain shortcut
                              and always recurse into conditional trees
                              (same output, mostly useful for testing)

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the output dir

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the
                              output directory to write the patterns

        Note: the file extension is chosen by the formatter for the
              datatype.

    Examples

        $ hamm -o <path> --support=.05 \
            itemset ./transactions.dat \
            growth \
            chain log file
`
}

func growthMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
			"no-single-path",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	noSinglePath := false
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "--no-single-path":
			noSinglePath = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	miner := growth.NewMiner(conf)
	miner.NoSinglePath = noSinglePath
	return miner, args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"growth": growthMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"modes", "types", "reporters",
			"support=",
			"min-count=",
			"max-depth=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v growth %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	supportRate := 0.0
	minCount := 0
	maxDepth := 0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			supportRate = cmd.ParseFloat(oa.Arg())
		case "--min-count":
			minCount = cmd.ParseInt(oa.Arg())
		case "--max-depth":
			maxDepth = cmd.ParseInt(oa.Arg())
		case "--types":
			fmt.Fprintln(os.Stderr, "Types:")
			for k := range cmd.Types {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if minCount <= 0 && supportRate <= 0 {
		fmt.Fprintf(os.Stderr, "You must supply --support=<float> or --min-count=<int>\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if minCount > 0 && supportRate > 0 {
		fmt.Fprintf(os.Stderr, "--support and --min-count are mutually exclusive\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if supportRate > 1 {
		fmt.Fprintf(os.Stderr, "--support is a fraction, it must be <= 1\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:       cache,
		Output:      output,
		Support:     minCount,
		SupportRate: supportRate,
		MaxDepth:    maxDepth,
	}
	return cmd.Main(args, conf, modes)
}
