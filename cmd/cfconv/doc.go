// This file is part of Einherjar - https://github.com/narke/Einherjar
//
// Copyright 2016 The Einherjar Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The cfconv command converts colorForth blocks between the binary block
// format and the textual block notation:
//
//	{block 0}
//	define(sq) compileword(dup) compileword(*) compilemacro(;)
//	define(cube) compileword(dup) compileword(sq) compileword(*) compilemacro(;)
//
// Usage:
//
//	cfconv [flags] tocf   <in.txt>  <out.blk>
//	cfconv [flags] totext <in.blk>  [out.txt|-]
//	cfconv [flags] html   <in.blk>  [out.html|-]
//	cfconv [flags] dump   <in.blk>
//	cfconv [flags] export <in.blk>  <out.cbor>
//	cfconv [flags] import <in.cbor> <out.blk>
//	cfconv [flags] pack   <token>...
//	cfconv [flags] unpack <hexword>...
//	cfconv [flags] store  put <name> <in.blk> | get <name> <out.blk> | ls | rm <name>
//
// Flags:
//
//	-color mode
//		  colorize output: auto, always or never (default auto)
//	-config file
//		  load configuration from file instead of searching for cfconv.toml
//	-db path
//		  block store database path
//	-debug
//		  enable debug diagnostics
//	-strict
//		  require {block N} headers to number blocks in order
//	-v int
//		  log verbosity, from -4 (silent) to 2 (debug)
//
// tocf assembles a text file into binary blocks. totext does the reverse and
// writes to stdout if no output file is given; on a terminal the output is
// colored like the colorForth editor does. html renders the blocks as an HTML
// page.
//
// dump prints the raw words of every block in hexadecimal.
//
// export and import convert between binary blocks and a CBOR encoding of the
// decoded calls, for use by other tools.
//
// pack and unpack convert single words, as found in the colorForth kernel
// sources, to and from their packed 32 bit form.
//
// store keeps block images in an SQLite database, under a name. The database
// path is taken from -db, or from the configuration file (blocks.db by
// default).
//
// -debug: print a full stack trace with errors.
//
// Unless -config is specified, cfconv looks for a cfconv.toml file in the
// current directory and its parents. See package
// github.com/narke/Einherjar/config for its format. Command line flags take
// precedence over the configuration file.
//
// The exit status is 2 on command line errors and 1 if the conversion fails.
package main
