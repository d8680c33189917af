package menu_test

import (
	"testing"

	"go-wms-admin/internal/menu"
	"go-wms-admin/internal/model"
	"go-wms-admin/internal/service"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMenu(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Menu Suite")
}

func predicate(codes ...string) func(string) bool {
	return func(name string) bool {
		return service.HasPermission(codes, name)
	}
}

var _ = Describe("Visible", func() {
	labels := func(items []menu.Item) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Label
		}
		return out
	}

	It("shows the full tree for the wildcard", func() {
		visible := menu.Visible(menu.Items, predicate(model.PermissionWildcard))
		Expect(labels(visible)).To(Equal([]string{"Dashboard", "Transactions", "Master Data", "Settings"}))
	})

	It("returns nothing for an empty permission set", func() {
		visible := menu.Visible(menu.Items, predicate())
		Expect(visible).To(BeEmpty())
	})

	It("shows a parent with only its permitted children", func() {
		visible := menu.Visible(menu.Items, predicate("organizations.read"))

		Expect(labels(visible)).To(Equal([]string{"Master Data"}))
		Expect(labels(visible[0].Children)).To(Equal([]string{"Organizations"}))
	})

	It("hides a parent when none of its children are permitted", func() {
		visible := menu.Visible(menu.Items, predicate("master_data.read"))
		Expect(visible).To(BeEmpty())
	})

	It("does not check the parent's own permission when a child is visible", func() {
		// warehouses.read alone, without master_data.read
		visible := menu.Visible(menu.Items, predicate("warehouses.read"))

		Expect(labels(visible)).To(Equal([]string{"Master Data"}))
		Expect(labels(visible[0].Children)).To(Equal([]string{"Warehouses"}))
	})

	It("shows leaves independently of siblings", func() {
		visible := menu.Visible(menu.Items, predicate("dashboard.read", "users.read"))

		Expect(labels(visible)).To(Equal([]string{"Dashboard", "Settings"}))
		Expect(labels(visible[1].Children)).To(Equal([]string{"Users"}))
	})

	It("keeps child order from the static tree", func() {
		visible := menu.Visible(menu.Items, predicate("branches.read", "organizations.read"))
		Expect(labels(visible[0].Children)).To(Equal([]string{"Organizations", "Branches"}))
	})

	It("does not mutate the static tree", func() {
		before := len(menu.Items[2].Children)
		_ = menu.Visible(menu.Items, predicate("organizations.read"))
		Expect(menu.Items[2].Children).To(HaveLen(before))
	})
})

var _ = Describe("ActiveRoot", func() {
	It("resolves a top-level path to itself", func() {
		root, ok := menu.ActiveRoot("/dashboard")
		Expect(ok).To(BeTrue())
		Expect(root.Label).To(Equal("Dashboard"))
	})

	It("resolves a child path to its top-level owner", func() {
		root, ok := menu.ActiveRoot("/master-data/organizations")
		Expect(ok).To(BeTrue())
		Expect(root.Label).To(Equal("Master Data"))
	})

	It("reports unknown paths", func() {
		_, ok := menu.ActiveRoot("/nowhere")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Icons", func() {
	It("every tree entry carries a known icon", func() {
		var check func(items []menu.Item)
		check = func(items []menu.Item) {
			for _, item := range items {
				Expect(item.Icon.Valid()).To(BeTrue(), "icon for %s", item.Label)
				check(item.Children)
			}
		}
		check(menu.Items)
	})

	It("falls back to the box icon for unknown names", func() {
		Expect(menu.Lookup("no-such-icon")).To(Equal(menu.IconBox))
	})
})
