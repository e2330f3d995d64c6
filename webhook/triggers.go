package webhook

// Catalog returns the triggers a webhook can subscribe to
func Catalog() []Trigger {
	return append([]Trigger(nil), catalog...)
}

var catalog = []Trigger{
	{Codename: "content_item_variant_changed", Name: "Content Item Variant Changed", Description: "Triggered when a content item variant is modified"},
	{Codename: "content_item_variant_deleted", Name: "Content Item Variant Deleted", Description: "Triggered when a content item variant is removed"},
	{Codename: "content_item_variant_created", Name: "Content Item Variant Created", Description: "Triggered when a new content item variant is created"},
	{Codename: "content_item_variant_workflow_step_changed", Name: "Workflow Step Changed", Description: "Triggered when a content item moves between workflow steps"},
	{Codename: "content_item_variant_published", Name: "Content Published", Description: "Triggered when content is published"},
	{Codename: "content_item_variant_unpublished", Name: "Content Unpublished", Description: "Triggered when content is unpublished"},
	{Codename: "asset_created", Name: "Asset Created", Description: "Triggered when a new asset is uploaded"},
	{Codename: "asset_updated", Name: "Asset Updated", Description: "Triggered when an asset is modified"},
	{Codename: "asset_deleted", Name: "Asset Deleted", Description: "Triggered when an asset is removed"},
}

func init() {
	for i := range catalog {
		catalog[i].ID = catalog[i].Codename
		catalog[i].IsEnabled = true
	}
}

// LookupTrigger returns the catalog entry for a codename
func LookupTrigger(codename string) (Trigger, bool) {
	for _, t := range catalog {
		if t.Codename == codename {
			return t, true
		}
	}
	return Trigger{}, false
}

// NewTrigger builds an enabled trigger, using catalog metadata when the codename is known
func NewTrigger(codename string, enabled bool) Trigger {
	t, ok := LookupTrigger(codename)
	if !ok {
		t = Trigger{ID: codename, Codename: codename, Name: codename}
	}
	t.IsEnabled = enabled
	return t
}

// TriggersFor maps form codenames to enabled triggers, dropping duplicates
func TriggersFor(codenames []string) []Trigger {
	seen := make(map[string]bool, len(codenames))
	triggers := make([]Trigger, 0, len(codenames))
	for _, c := range codenames {
		if seen[c] {
			continue
		}
		seen[c] = true
		triggers = append(triggers, NewTrigger(c, true))
	}
	return triggers
}
