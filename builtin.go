package main

// builtinOptions returns the grammar of grcli's own command line options.
// Each option wraps either an alternation of flag aliases, or a sequence of
// aliases followed by the option's argument leaf, which is the shape
// renderOptionSyntax expects.
func builtinOptions() *grammarNode {
	return or(
		seq(
			or(lit("-h"), lit("--help")),
		).withHelp("Show usage help and exit."),
		seq(
			or(lit("-V"), lit("--version")),
		).withHelp("Print the version and exit."),
		seq(
			seq(or(lit("-s"), lit("--socket")), dyn("path")),
		).withHelp("Path to the control plane API socket."),
		seq(
			seq(or(lit("-f"), lit("--file")), dyn("file")),
		).withHelp("Read commands from the specified file instead of standard input."),
		seq(
			or(lit("-e"), lit("--err-exit")),
		).withHelp("Abort on the first error."),
		seq(
			or(lit("-x"), lit("--trace-commands")),
		).withHelp("Print the executed commands."),
	)
}

// builtinCommands returns the default grcli command grammar. Command groups
// are sequences whose first child is the group literal and whose second child
// is the alternation of variants, all carrying the group identifier; leaf
// commands are bare cmd nodes identified by their full phrase.
func builtinCommands() *grammarNode {
	iface := seq(
		lit("interface").withHelp("Manage network interfaces."),
		or(
			cmd("interface show",
				seq(lit("show"), many(dyn("IFACE").withHelp("Interface name."))),
			).withHelp("Display interface status and statistics."),
			cmd("interface add",
				seq(lit("add"), dyn("NAME"), lit("type"), dyn("TYPE")),
			).withHelp("Create a new interface."),
			cmd("interface set",
				seq(lit("set"), dyn("NAME"), subset(
					seq(lit("mtu"), uintArg("MTU")),
					seq(lit("up")),
					seq(lit("down")),
				)),
			).withHelp("Modify interface attributes."),
			cmd("interface del",
				seq(lit("del"), dyn("NAME")),
			).withHelp("Delete an interface."),
		).withID("interface"),
	)

	address := seq(
		lit("address").withHelp("Manage IP addresses."),
		or(
			cmd("address show",
				seq(lit("show"), option(seq(lit("iface"), dyn("IFACE")))),
			).withHelp("Display addresses."),
			cmd("address add",
				seq(lit("add"), dyn("ADDR"), lit("iface"), dyn("IFACE").withHelp("Interface name.")),
			).withHelp("Assign an address to an interface."),
			cmd("address del",
				seq(lit("del"), dyn("ADDR"), lit("iface"), dyn("IFACE")),
			).withHelp("Remove an address from an interface."),
		).withID("address"),
	)

	route := seq(
		lit("route").withHelp("Manage the routing table."),
		or(
			cmd("route show",
				seq(lit("show"), option(seq(lit("vrf"), uintArg("VRF").withHelp("L3 routing domain.")))),
			).withHelp("Display the routing table."),
			cmd("route add",
				seq(lit("add"), dyn("DEST"), lit("via"), dyn("NH"),
					option(seq(lit("vrf"), uintArg("VRF")))),
			).withHelp("Add a route."),
			cmd("route del",
				seq(lit("del"), dyn("DEST"), option(seq(lit("vrf"), uintArg("VRF")))),
			).withHelp("Delete a route."),
		).withID("route"),
	)

	nexthop := seq(
		lit("nexthop").withHelp("Manage nexthops."),
		or(
			cmd("nexthop show",
				seq(lit("show")),
			).withHelp("Display nexthops."),
			cmd("nexthop add",
				seq(lit("add"), lit("id"), uintArg("NH_ID"),
					lit("address"), dyn("IP"), lit("iface"), dyn("IFACE")),
			).withHelp("Create a nexthop."),
			cmd("nexthop del",
				seq(lit("del"), lit("id"), uintArg("NH_ID").withHelp("Nexthop identifier.")),
			).withHelp("Delete a nexthop."),
		).withID("nexthop"),
	)

	return or(
		iface,
		address,
		route,
		nexthop,
		cmd("show version").withHelp("Show the version of grout."),
		cmd("quit").withHelp("Exit the interactive shell."),
	)
}
