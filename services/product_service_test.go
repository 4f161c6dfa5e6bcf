package services_test

import (
	"errors"
	"testing"

	"marketplace/services"

	"github.com/stretchr/testify/require"
)

func TestProductService(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	_, prov := mkProvider(t, db, "seller@example.com", "Shop")
	widget := mkProduct(t, db, prov.ID, "Widget", "9.99", 10)
	mkImage(t, db, widget.ID, "https://img/b.png", 2)
	mkImage(t, db, widget.ID, "https://img/a.png", 1)
	mkProduct(t, db, prov.ID, "Plain", "1.00", 1)
	svc := services.NewProductService(r.products, r.images)

	t.Run("list carries ordered images", func(t *testing.T) {
		got, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, []string{"https://img/a.png", "https://img/b.png"}, got[0].Imagenes)
		require.Empty(t, got[1].Imagenes)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, 999)
		var nf *services.NotFoundError
		require.True(t, errors.As(err, &nf))
		require.Equal(t, "product not found", nf.Msg)
	})
}
