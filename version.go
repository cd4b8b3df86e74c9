package main

// Version is the grcli-man release reported by --version.
const Version = "0.3.0"

const (
	// progName is the documented program; generated pages are named
	// grcli(1), grcli-interface(1) and so on.
	progName = "grcli"

	// groutVersion is the grout release the built-in grammar matches. It
	// appears in every page title.
	groutVersion = "0.12.0"

	defaultSockPath = "/run/grout.sock"
)

const envDPRCDescription = "Set the DPRC - Datapath Resource Container: This value should match the one used " +
	"by DPDK during the scan of the fslmc bus. It is recommended to set this on any NXP " +
	"QorIQ targets. This serves as the entry point for grcli to enable autocompletion of " +
	"fslmc devices manageable by grout. While grcli can configure grout without this " +
	"environment setting, autocompletion of the devargs will not be available."

const reportingBugs = "Report bugs to the grout project issue tracker at " +
	"<https://github.com/DPDK/grout/issues>."
