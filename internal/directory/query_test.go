package directory_test

import (
	"math"
	"net/url"
	"testing"

	"github.com/frahmantamala/ops-dashboard/internal/directory"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDirectory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Directory Suite")
}

var employeeOptions = directory.Options{
	FilterParam: "department",
	SortFields: map[string]string{
		"name":       "name",
		"department": "department",
	},
	DefaultSort: "name",
}

var _ = Describe("ParseQuery", func() {
	It("should apply defaults when nothing is supplied", func() {
		q := directory.ParseQuery(url.Values{}, employeeOptions)
		Expect(q).To(Equal(directory.Query{
			SortField:     "name",
			SortDirection: directory.SortAsc,
			Page:          1,
			Limit:         20,
		}))
		Expect(q.Offset()).To(Equal(0))
	})

	DescribeTable("coerces malformed paging to defaults",
		func(page, limit string, wantPage, wantLimit int) {
			q := directory.ParseQuery(url.Values{"page": {page}, "limit": {limit}}, employeeOptions)
			Expect(q.Page).To(Equal(wantPage))
			Expect(q.Limit).To(Equal(wantLimit))
		},
		Entry("zero and negative", "0", "-5", 1, 20),
		Entry("non numeric", "two", "ten", 1, 20),
		Entry("floats", "1.5", "2.5", 1, 20),
		Entry("valid", "3", "15", 3, 15),
		Entry("limit above the cap", "1", "5000", 1, 100),
	)

	It("should honour custom default and max limits", func() {
		opts := employeeOptions
		opts.DefaultLimit = 10
		opts.MaxLimit = 25
		Expect(directory.ParseQuery(url.Values{}, opts).Limit).To(Equal(10))
		Expect(directory.ParseQuery(url.Values{"limit": {"30"}}, opts).Limit).To(Equal(25))
	})

	It("should fall back to the default sort field for unknown fields", func() {
		q := directory.ParseQuery(url.Values{"sortBy": {"salary; DROP TABLE employees"}}, employeeOptions)
		Expect(q.SortField).To(Equal("name"))
	})

	It("should accept known sort fields and directions", func() {
		q := directory.ParseQuery(url.Values{"sortBy": {"department"}, "sortOrder": {"DESC"}}, employeeOptions)
		Expect(q.SortField).To(Equal("department"))
		Expect(q.SortDirection).To(Equal(directory.SortDesc))
	})

	It("should treat unknown directions as ascending", func() {
		q := directory.ParseQuery(url.Values{"sortOrder": {"sideways"}}, employeeOptions)
		Expect(q.SortDirection).To(Equal(directory.SortAsc))
	})

	DescribeTable("filter sentinel",
		func(value, want string) {
			q := directory.ParseQuery(url.Values{"department": {value}}, employeeOptions)
			Expect(q.Filter).To(Equal(want))
		},
		Entry("All", "All", ""),
		Entry("all lower case", "all", ""),
		Entry("empty", "", ""),
		Entry("department", "Engineering", "Engineering"),
	)

	It("should trim the search text", func() {
		q := directory.ParseQuery(url.Values{"search": {"  ana  "}}, employeeOptions)
		Expect(q.Search).To(Equal("ana"))
	})

	It("should clamp huge pages so the offset stays positive", func() {
		q := directory.ParseQuery(url.Values{"page": {"4611686018427387904"}, "limit": {"100"}}, employeeOptions)
		Expect(q.Page).To(Equal(math.MaxInt / 100))
		Expect(q.Offset()).To(BeNumerically(">", 0))
		Expect(q.Offset()).To(BeNumerically("<=", math.MaxInt-100))
	})

	It("should saturate the offset of queries built by hand", func() {
		q := directory.Query{Page: math.MaxInt, Limit: 100}
		Expect(q.Offset()).To(Equal(math.MaxInt))
		Expect(directory.NewPage([]string{}, 2, q).HasMore).To(BeFalse())
	})

	It("should compute the offset from page and limit", func() {
		q := directory.ParseQuery(url.Values{"page": {"3"}, "limit": {"10"}}, employeeOptions)
		Expect(q.Offset()).To(Equal(20))
	})
})

var _ = Describe("NewPage", func() {
	It("should report more records when the window ends before the total", func() {
		q := directory.Query{Page: 1, Limit: 2}
		page := directory.NewPage([]string{"a", "b"}, 5, q)
		Expect(page.HasMore).To(BeTrue())
		Expect(page.TotalCount).To(Equal(int64(5)))
	})

	It("should report no more records on the last page", func() {
		q := directory.Query{Page: 3, Limit: 2}
		page := directory.NewPage([]string{"e"}, 5, q)
		Expect(page.HasMore).To(BeFalse())
	})

	It("should never return a nil slice", func() {
		page := directory.NewPage[string](nil, 0, directory.Query{Page: 1, Limit: 20})
		Expect(page.Records).NotTo(BeNil())
		Expect(page.Records).To(BeEmpty())
	})
})
