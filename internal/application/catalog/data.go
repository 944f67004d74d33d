// internal/application/catalog/data.go
package catalog

import "sunshinesaree/internal/domain/product"

func intp(v int) *int { return &v }

// Categories shown on the storefront; "all" is the unfiltered view.
var Categories = []Category{
	{ID: "all", Name: "All Sarees"},
	{ID: "silk", Name: "Silk Sarees"},
	{ID: "cotton", Name: "Cotton Sarees"},
	{ID: "designer", Name: "Designer Sarees"},
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// seedProducts is the built-in catalog.
var seedProducts = []product.Product{
	{
		Summary: product.Summary{
			ID:        1,
			Name:      "Elegant Green Silk Saree with Gold Border",
			Price:     1999,
			SalePrice: intp(999),
			Image:     "/images/green-silk-saree.png",
		},
		Category: "silk",
		Description: "Elevate your traditional look with this stunning green silk saree, " +
			"featuring a luxurious golden border that adds a royal touch. Crafted from " +
			"premium silk fabric, this saree offers a smooth texture, elegant drape, " +
			"and unmatched comfort.",
	},
	{
		Summary: product.Summary{
			ID:        2,
			Name:      "Kanjivaram Silk Saree",
			Price:     1899,
			SalePrice: intp(1299),
			Image:     "/images/kanjivaram-silk-saree.png",
		},
		Category:    "silk",
		Description: "A beautiful Kanjivaram silk saree with intricate designs and vibrant colors.",
	},
	{
		Summary: product.Summary{
			ID:        3,
			Name:      "Handloom Cotton Saree",
			Price:     1499,
			SalePrice: intp(999),
			Image:     "/images/handloom-cotton-saree.png",
		},
		Category:    "cotton",
		Description: "Comfortable and elegant handloom cotton saree for daily wear.",
	},
	{
		Summary: product.Summary{
			ID:    4,
			Name:  "Designer Embroidered Saree",
			Price: 1899,
			Image: "/images/designer-embroidered-saree.png",
		},
		Category:    "designer",
		Description: "Exquisite designer saree with detailed embroidery for special occasions.",
	},
	{
		Summary: product.Summary{
			ID:    5,
			Name:  "Linen Handwoven Saree",
			Price: 1699,
			Image: "/images/linen-handwoven-saree.png",
		},
		Category:    "cotton",
		Description: "Light handwoven linen saree, breathable and easy to drape.",
	},
	{
		Summary: product.Summary{
			ID:        6,
			Name:      "Patola Silk Saree",
			Price:     2099,
			SalePrice: intp(1899),
			Image:     "/images/patola-silk-saree.png",
		},
		Category:    "silk",
		Description: "Classic double ikat Patola silk saree with geometric motifs.",
	},
}
