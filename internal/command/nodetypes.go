package command

// Builtin node types targeted by structural jump and list commands. The
// Predicate field names a predicate resolved by the DOM layer.
var (
	NodeHeading = &NodeType{
		Name:          "heading",
		Predicate:     "heading",
		ForwardError:  "No next heading.",
		BackwardError: "No previous heading.",
	}
	NodeHeading1 = &NodeType{
		Name:          "heading1",
		Predicate:     "heading1",
		ForwardError:  "No next level 1 heading.",
		BackwardError: "No previous level 1 heading.",
	}
	NodeHeading2 = &NodeType{
		Name:          "heading2",
		Predicate:     "heading2",
		ForwardError:  "No next level 2 heading.",
		BackwardError: "No previous level 2 heading.",
	}
	NodeHeading3 = &NodeType{
		Name:          "heading3",
		Predicate:     "heading3",
		ForwardError:  "No next level 3 heading.",
		BackwardError: "No previous level 3 heading.",
	}
	NodeHeading4 = &NodeType{
		Name:          "heading4",
		Predicate:     "heading4",
		ForwardError:  "No next level 4 heading.",
		BackwardError: "No previous level 4 heading.",
	}
	NodeHeading5 = &NodeType{
		Name:          "heading5",
		Predicate:     "heading5",
		ForwardError:  "No next level 5 heading.",
		BackwardError: "No previous level 5 heading.",
	}
	NodeHeading6 = &NodeType{
		Name:          "heading6",
		Predicate:     "heading6",
		ForwardError:  "No next level 6 heading.",
		BackwardError: "No previous level 6 heading.",
	}
	NodeLink = &NodeType{
		Name:          "link",
		Predicate:     "link",
		ForwardError:  "No next link.",
		BackwardError: "No previous link.",
	}
	NodeVisitedLink = &NodeType{
		Name:          "visitedLink",
		Predicate:     "visitedLink",
		ForwardError:  "No next visited link.",
		BackwardError: "No previous visited link.",
	}
	NodeTable = &NodeType{
		Name:          "table",
		Predicate:     "table",
		ForwardError:  "No next table.",
		BackwardError: "No previous table.",
	}
	NodeList = &NodeType{
		Name:          "list",
		Predicate:     "list",
		ForwardError:  "No next list.",
		BackwardError: "No previous list.",
	}
	NodeListItem = &NodeType{
		Name:          "listItem",
		Predicate:     "listItem",
		ForwardError:  "No next list item.",
		BackwardError: "No previous list item.",
	}
	NodeFormField = &NodeType{
		Name:          "formField",
		Predicate:     "formField",
		ForwardError:  "No next form field.",
		BackwardError: "No previous form field.",
	}
	NodeButton = &NodeType{
		Name:          "button",
		Predicate:     "button",
		ForwardError:  "No next button.",
		BackwardError: "No previous button.",
	}
	NodeCheckbox = &NodeType{
		Name:          "checkbox",
		Predicate:     "checkbox",
		ForwardError:  "No next checkbox.",
		BackwardError: "No previous checkbox.",
	}
	NodeRadio = &NodeType{
		Name:          "radio",
		Predicate:     "radio",
		ForwardError:  "No next radio button.",
		BackwardError: "No previous radio button.",
	}
	NodeComboBox = &NodeType{
		Name:          "comboBox",
		Predicate:     "comboBox",
		ForwardError:  "No next combo box.",
		BackwardError: "No previous combo box.",
	}
	NodeEditText = &NodeType{
		Name:          "editText",
		Predicate:     "editText",
		ForwardError:  "No next editable text field.",
		BackwardError: "No previous editable text field.",
	}
	NodeGraphic = &NodeType{
		Name:          "graphic",
		Predicate:     "graphic",
		ForwardError:  "No next graphic.",
		BackwardError: "No previous graphic.",
	}
	NodeLandmark = &NodeType{
		Name:          "landmark",
		Predicate:     "landmark",
		ForwardError:  "No next landmark.",
		BackwardError: "No previous landmark.",
	}
	NodeBlockquote = &NodeType{
		Name:          "blockquote",
		Predicate:     "blockquote",
		ForwardError:  "No next blockquote.",
		BackwardError: "No previous blockquote.",
	}
	NodeSlider = &NodeType{
		Name:          "slider",
		Predicate:     "slider",
		ForwardError:  "No next slider.",
		BackwardError: "No previous slider.",
	}
	NodeMath = &NodeType{
		Name:          "math",
		Predicate:     "math",
		ForwardError:  "No next math expression.",
		BackwardError: "No previous math expression.",
	}
	NodeMedia = &NodeType{
		Name:          "media",
		Predicate:     "media",
		ForwardError:  "No next media widget.",
		BackwardError: "No previous media widget.",
	}
	NodeSection = &NodeType{
		Name:          "section",
		Predicate:     "section",
		ForwardError:  "No next section.",
		BackwardError: "No previous section.",
	}
	NodeControl = &NodeType{
		Name:          "control",
		Predicate:     "control",
		ForwardError:  "No next control.",
		BackwardError: "No previous control.",
	}
)
