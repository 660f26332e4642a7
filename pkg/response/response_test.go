package response

import "testing"

func TestListTotalPaginas(t *testing.T) {
	cases := []struct {
		name   string
		total  int64
		limite int
		want   int64
	}{
		{"exacto", 40, 20, 2},
		{"con resto", 41, 20, 3},
		{"vacio", 0, 20, 0},
		{"limite cero", 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := List(nil, tc.total, 1, tc.limite)
			if p.Pagination.TotalPaginas != tc.want {
				t.Fatalf("totalPaginas = %d, want %d", p.Pagination.TotalPaginas, tc.want)
			}
			if !p.Success {
				t.Fatal("listing envelope should be success")
			}
		})
	}
}
