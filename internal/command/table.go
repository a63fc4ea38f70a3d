package command

// Well-known identifiers the executor itself references.
const (
	// IDFind is the generic find operation that FindNext descriptors are
	// rewritten to before dispatch.
	IDFind = "find"

	// IDNextRow and friends are the targets that "previous" row/column
	// variants fold onto after direction reversal.
	IDNextRow = "nextRow"
	IDNextCol = "nextCol"
)

// Category names used by the builtin table.
const (
	CategoryNavigation  = "navigation"
	CategoryJump        = "jump_commands"
	CategoryLists       = "overview"
	CategoryTables      = "tables"
	CategoryControlling = "controlling_speech"
	CategoryModifiers   = "modifier_keys"
	CategoryActions     = "actions"
	CategoryInformation = "information"
	CategoryHelp        = "help_commands"
	CategoryNone        = "no_op"
)

// move builds a directional movement descriptor.
func move(id string, forward bool, doc string) Descriptor {
	return Descriptor{
		ID:       id,
		Forward:  forward,
		Backward: !forward,
		Announce: true,
		Category: CategoryNavigation,
		Doc:      doc,
	}
}

// jump builds a structural jump descriptor over a node type.
func jump(id string, forward bool, nt *NodeType, doc string) Descriptor {
	return Descriptor{
		ID:        id,
		Forward:   forward,
		Backward:  !forward,
		SkipInput: true,
		FindNext:  nt,
		Category:  CategoryJump,
		Doc:       doc,
	}
}

// nodeList builds a list-widget descriptor over a node type.
func nodeList(id string, nt *NodeType, doc string) Descriptor {
	return Descriptor{
		ID:                   id,
		SkipInput:            true,
		DisallowContinuation: true,
		NodeList:             nt,
		Category:             CategoryLists,
		Doc:                  doc,
	}
}

// speech builds a speech-property descriptor; these run during continuous
// reading without interrupting it.
func speech(id, doc string) Descriptor {
	return Descriptor{ID: id, Category: CategoryControlling, Doc: doc}
}

// action builds a side-effect action descriptor.
func action(id, doc string) Descriptor {
	return Descriptor{ID: id, Category: CategoryActions, Doc: doc}
}

// info builds an announcement-only descriptor.
func info(id, doc string) Descriptor {
	return Descriptor{ID: id, DisallowContinuation: true, Category: CategoryInformation, Doc: doc}
}

// aux builds a descriptor that opens an auxiliary page; continuous
// reading stops when one of these fires.
func aux(id, doc string) Descriptor {
	return Descriptor{ID: id, DisallowContinuation: true, Category: CategoryHelp, Doc: doc}
}

// BuiltinTable returns the builtin command table. The returned slice is
// freshly allocated; callers may append overlay entries before building
// a registry from it.
func BuiltinTable() []Descriptor {
	table := []Descriptor{
		// Continuous reading and basic navigation.
		{ID: "forward", Forward: true, Announce: true, Category: CategoryNavigation, Doc: "Navigate forward"},
		{ID: "backward", Backward: true, Announce: true, Category: CategoryNavigation, Doc: "Navigate backward"},
		{ID: "right", Forward: true, Announce: true, Category: CategoryNavigation, Doc: "Move right"},
		{ID: "left", Backward: true, Announce: true, Category: CategoryNavigation, Doc: "Move left"},
		{ID: "skipForward", Forward: true, Announce: true, SkipInput: true, Category: CategoryNavigation, Doc: "Skip forward past the current block"},
		{ID: "skipBackward", Backward: true, Announce: true, SkipInput: true, Category: CategoryNavigation, Doc: "Skip backward past the current block"},
		{ID: "readFromHere", Forward: true, Category: CategoryControlling, Doc: "Start reading from the current position"},
		{ID: "stopSpeech", DisallowContinuation: true, Category: CategoryControlling, Doc: "Stop speech"},

		move("nextCharacter", true, "Next character"),
		move("previousCharacter", false, "Previous character"),
		move("nextWord", true, "Next word"),
		move("previousWord", false, "Previous word"),
		move("nextSentence", true, "Next sentence"),
		move("previousSentence", false, "Previous sentence"),
		move("nextLine", true, "Next line"),
		move("previousLine", false, "Previous line"),
		move("nextObject", true, "Next object"),
		move("previousObject", false, "Previous object"),
		move("nextGroup", true, "Next group"),
		move("previousGroup", false, "Previous group"),

		{ID: "jumpToTop", Forward: true, SkipInput: true, Announce: true, DisallowContinuation: true, Category: CategoryNavigation, Doc: "Jump to the top of the page"},
		{ID: "jumpToBottom", Backward: true, SkipInput: true, Announce: true, DisallowContinuation: true, Category: CategoryNavigation, Doc: "Jump to the bottom of the page"},
		{ID: "moveToStartOfLine", Backward: true, Announce: true, Category: CategoryNavigation, Doc: "Move to the start of the line"},
		{ID: "moveToEndOfLine", Forward: true, Announce: true, Category: CategoryNavigation, Doc: "Move to the end of the line"},

		// Granularity.
		{ID: "nextGranularity", Announce: true, Category: CategoryNavigation, Doc: "Widen the navigation granularity"},
		{ID: "previousGranularity", Announce: true, Category: CategoryNavigation, Doc: "Narrow the navigation granularity"},

		// The generic find operation; only ever dispatched via a FindNext
		// rewrite, never bound directly.
		{ID: IDFind, Announce: true, Category: CategoryJump, Doc: "Find the next matching element"},

		// Structural jumps.
		jump("nextHeading", true, NodeHeading, "Next heading"),
		jump("previousHeading", false, NodeHeading, "Previous heading"),
		jump("nextHeading1", true, NodeHeading1, "Next level 1 heading"),
		jump("previousHeading1", false, NodeHeading1, "Previous level 1 heading"),
		jump("nextHeading2", true, NodeHeading2, "Next level 2 heading"),
		jump("previousHeading2", false, NodeHeading2, "Previous level 2 heading"),
		jump("nextHeading3", true, NodeHeading3, "Next level 3 heading"),
		jump("previousHeading3", false, NodeHeading3, "Previous level 3 heading"),
		jump("nextHeading4", true, NodeHeading4, "Next level 4 heading"),
		jump("previousHeading4", false, NodeHeading4, "Previous level 4 heading"),
		jump("nextHeading5", true, NodeHeading5, "Next level 5 heading"),
		jump("previousHeading5", false, NodeHeading5, "Previous level 5 heading"),
		jump("nextHeading6", true, NodeHeading6, "Next level 6 heading"),
		jump("previousHeading6", false, NodeHeading6, "Previous level 6 heading"),
		jump("nextLink", true, NodeLink, "Next link"),
		jump("previousLink", false, NodeLink, "Previous link"),
		jump("nextVisitedLink", true, NodeVisitedLink, "Next visited link"),
		jump("previousVisitedLink", false, NodeVisitedLink, "Previous visited link"),
		jump("nextTable", true, NodeTable, "Next table"),
		jump("previousTable", false, NodeTable, "Previous table"),
		jump("nextList", true, NodeList, "Next list"),
		jump("previousList", false, NodeList, "Previous list"),
		jump("nextListItem", true, NodeListItem, "Next list item"),
		jump("previousListItem", false, NodeListItem, "Previous list item"),
		jump("nextFormField", true, NodeFormField, "Next form field"),
		jump("previousFormField", false, NodeFormField, "Previous form field"),
		jump("nextButton", true, NodeButton, "Next button"),
		jump("previousButton", false, NodeButton, "Previous button"),
		jump("nextCheckbox", true, NodeCheckbox, "Next checkbox"),
		jump("previousCheckbox", false, NodeCheckbox, "Previous checkbox"),
		jump("nextRadio", true, NodeRadio, "Next radio button"),
		jump("previousRadio", false, NodeRadio, "Previous radio button"),
		jump("nextComboBox", true, NodeComboBox, "Next combo box"),
		jump("previousComboBox", false, NodeComboBox, "Previous combo box"),
		jump("nextEditText", true, NodeEditText, "Next editable text field"),
		jump("previousEditText", false, NodeEditText, "Previous editable text field"),
		jump("nextGraphic", true, NodeGraphic, "Next graphic"),
		jump("previousGraphic", false, NodeGraphic, "Previous graphic"),
		jump("nextLandmark", true, NodeLandmark, "Next landmark"),
		jump("previousLandmark", false, NodeLandmark, "Previous landmark"),
		jump("nextBlockquote", true, NodeBlockquote, "Next blockquote"),
		jump("previousBlockquote", false, NodeBlockquote, "Previous blockquote"),
		jump("nextSlider", true, NodeSlider, "Next slider"),
		jump("previousSlider", false, NodeSlider, "Previous slider"),
		jump("nextMath", true, NodeMath, "Next math expression"),
		jump("previousMath", false, NodeMath, "Previous math expression"),
		jump("nextMedia", true, NodeMedia, "Next media widget"),
		jump("previousMedia", false, NodeMedia, "Previous media widget"),
		jump("nextSection", true, NodeSection, "Next section"),
		jump("previousSection", false, NodeSection, "Previous section"),
		jump("nextControl", true, NodeControl, "Next control"),
		jump("previousControl", false, NodeControl, "Previous control"),

		// Element list widgets.
		nodeList("showHeadingsList", NodeHeading, "Show headings list"),
		nodeList("showLinksList", NodeLink, "Show links list"),
		nodeList("showFormsList", NodeFormField, "Show forms list"),
		nodeList("showTablesList", NodeTable, "Show tables list"),
		nodeList("showLandmarksList", NodeLandmark, "Show landmarks list"),

		// Table shifts. Previous variants reverse direction and fold onto
		// the next variant during dispatch.
		{ID: IDNextRow, Forward: true, SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Next table row"},
		{ID: "previousRow", Backward: true, SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Previous table row"},
		{ID: IDNextCol, Forward: true, SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Next table column"},
		{ID: "previousCol", Backward: true, SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Previous table column"},

		// Table structure actions.
		{ID: "goToFirstCell", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Go to the first cell of the table"},
		{ID: "goToLastCell", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Go to the last cell of the table"},
		{ID: "goToRowFirstCell", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Go to the first cell of the current row"},
		{ID: "goToRowLastCell", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Go to the last cell of the current row"},
		{ID: "goToColFirstCell", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Go to the first cell of the current column"},
		{ID: "goToColLastCell", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Go to the last cell of the current column"},
		{ID: "announceHeaders", SkipInput: true, Category: CategoryTables, Doc: "Announce the headers of the current cell"},
		{ID: "speakTableLocation", SkipInput: true, Category: CategoryTables, Doc: "Speak the current position in the table"},
		{ID: "enterShifter", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Enter table navigation"},
		{ID: "exitShifter", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Exit table navigation"},
		{ID: "exitShifterContent", SkipInput: true, Announce: true, Category: CategoryTables, Doc: "Exit table navigation past the table contents"},

		// Speech properties and echo modes.
		speech("decreaseTtsRate", "Decrease the speech rate"),
		speech("increaseTtsRate", "Increase the speech rate"),
		speech("decreaseTtsPitch", "Decrease the speech pitch"),
		speech("increaseTtsPitch", "Increase the speech pitch"),
		speech("decreaseTtsVolume", "Decrease the speech volume"),
		speech("increaseTtsVolume", "Increase the speech volume"),
		speech("cycleTypingEcho", "Cycle the typing echo mode"),
		speech("cyclePunctuationEcho", "Cycle the punctuation echo level"),

		// Side-effect actions.
		action("forceClickOnCurrentItem", "Click the current item"),
		action("forceDoubleClickOnCurrentItem", "Double-click the current item"),
		{ID: "openLongDesc", DisallowContinuation: true, Category: CategoryActions, Doc: "Open the long description of the current graphic"},
		{ID: "pauseAllMedia", Category: CategoryActions, Doc: "Pause all media widgets on the page"},
		{ID: "performDefaultAction", DoDefault: true, Category: CategoryActions, Doc: "Perform the element's default action"},
		action("toggleSelection", "Start or end selection"),
		action("toggleStickyMode", "Toggle sticky mode"),
		action("toggleKeyPrefix", "Toggle the modifier key prefix"),
		action("toggleEarcons", "Toggle earcons"),
		{ID: "toggleSearchWidget", SkipInput: true, DisallowContinuation: true, Category: CategoryActions, Doc: "Open the find-in-page widget"},
		{ID: "toggleKeyboardHelp", DisallowContinuation: true, Category: CategoryHelp, Doc: "Show or hide keyboard help"},
		{ID: "showContextMenu", DisallowContinuation: true, Category: CategoryActions, Doc: "Show the context menu for the current item"},

		// Information commands.
		info("fullyDescribe", "Fully describe the current position"),
		info("readLinkURL", "Read the URL behind the current link"),
		info("readCurrentTitle", "Read the document title"),
		info("readCurrentURL", "Read the document URL"),
		info("speakTimeAndDate", "Speak the current time and date"),
		info("announcePosition", "Announce the current position"),
		{ID: "toggleSemantics", Category: CategoryInformation, Doc: "Toggle semantic descriptions"},

		// Auxiliary pages.
		aux("help", "Open the tutorial"),
		aux("showOptionsPage", "Open the options page"),
		aux("showBookmarkManager", "Open the bookmark manager"),
		aux("showKbExplorerPage", "Open the keyboard explorer"),
		aux("showPowerKey", "Show the power key overview"),

		// Tab handling; native focus traversal must see the resulting
		// focus events, so these leave event listeners live and may let
		// the native action proceed.
		{ID: "handleTab", Forward: true, AllowEvents: true, DoDefault: false, DisallowContinuation: true, Platform: PlatformWML | PlatformChromeOS, Category: CategoryNavigation, Doc: "Move focus with Tab"},
		{ID: "handleTabPrev", Backward: true, AllowEvents: true, DoDefault: false, DisallowContinuation: true, Platform: PlatformWML | PlatformChromeOS, Category: CategoryNavigation, Doc: "Move focus with Shift+Tab"},

		// Intentional no-ops kept for diagnostics and binding placeholders.
		{ID: "nop", AllowEvents: true, Category: CategoryNone, Doc: "Do nothing"},
		{ID: "debug", Category: CategoryNone, Doc: "Debug placeholder"},
	}

	return table
}
