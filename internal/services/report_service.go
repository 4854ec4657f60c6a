package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hearth/internal/bank"
	"hearth/internal/logger"
	"hearth/internal/money"
)

// breakdownConcurrency bounds the per-category fan-out in CategoryBreakdown.
const breakdownConcurrency = 4

// reportService builds the monthly budgeted-vs-actual category report.
type reportService struct {
	bank         bank.Client
	budgets      BudgetServicer
	transactions TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(bankClient bank.Client, budgets BudgetServicer, transactions TransactionServicer) ReportServicer {
	return &reportService{bank: bankClient, budgets: budgets, transactions: transactions}
}

// MonthReport merges the bank's category hierarchy, the stored budget rows,
// and the month's bank transactions into a two-level report.
//
// A failure fetching categories or transactions is fatal for the request. A
// failure fetching budgets (the store may not be provisioned yet) degrades
// to an empty budget set and is only logged.
func (s *reportService) MonthReport(ctx context.Context, month time.Time) ([]CategoryGroup, error) {
	categories, err := s.bank.Categories(ctx)
	if err != nil {
		return nil, err
	}
	var roots []bank.Category
	for _, cat := range categories {
		if cat.IsRoot() {
			roots = append(roots, cat)
		}
	}

	budgetByCategory := make(map[string]int64)
	budgets, err := s.budgets.ForMonth(month)
	if err != nil {
		logger.Get().Warnw("could not fetch budgets, continuing with empty set", "error", err)
	} else {
		for _, b := range budgets {
			budgetByCategory[b.CategoryID] = b.AmountCents
		}
	}

	start, end := MonthWindow(month)
	page, err := s.bank.Transactions(ctx, bank.TransactionQuery{Since: &start, Until: &end})
	if err != nil {
		return nil, err
	}

	// Uncategorized transactions stay out of per-category totals; they still
	// appear in raw listings.
	activityByCategory := make(map[string]int64)
	for _, txn := range page.Transactions {
		if categoryID := txn.CategoryID(); categoryID != "" {
			activityByCategory[categoryID] += txn.Attributes.Amount.ValueInBaseUnits
		}
	}

	// One child fetch per root, concurrently. Any failure fails the report;
	// group order follows the order the bank returned the roots in.
	groups := make([]CategoryGroup, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			children, err := s.bank.ChildCategories(gctx, root.ID)
			if err != nil {
				return err
			}
			groups[i] = buildGroup(root, children, budgetByCategory, activityByCategory)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return groups, nil
}

// CategoryBreakdown fetches each category's merged transaction list for the
// month with bounded concurrency. A failed category yields an empty list and
// never aborts the batch. Each entry carries both the bulk-scan activity and
// the listing total; the two can legitimately diverge and the difference is
// surfaced as Discrepancy rather than reconciled.
func (s *reportService) CategoryBreakdown(ctx context.Context, month time.Time, categoryIDs []string) ([]CategoryActivity, error) {
	start, end := MonthWindow(month)
	page, err := s.bank.Transactions(ctx, bank.TransactionQuery{Since: &start, Until: &end})
	if err != nil {
		return nil, err
	}

	activityByCategory := make(map[string]int64)
	for _, txn := range page.Transactions {
		if categoryID := txn.CategoryID(); categoryID != "" {
			activityByCategory[categoryID] += txn.Attributes.Amount.ValueInBaseUnits
		}
	}

	results := make([]CategoryActivity, len(categoryIDs))
	var g errgroup.Group
	g.SetLimit(breakdownConcurrency)
	for i, categoryID := range categoryIDs {
		g.Go(func() error {
			entry := CategoryActivity{
				CategoryID:   categoryID,
				Transactions: []MergedTransaction{},
				Activity:     activityByCategory[categoryID],
			}
			listing, err := s.transactions.List(ctx, ListQuery{
				Start:      &start,
				End:        &end,
				CategoryID: categoryID,
			})
			if err != nil {
				logger.Get().Warnw("category breakdown fetch failed, returning empty list",
					"category_id", categoryID, "error", err)
			} else {
				entry.Transactions = listing.Transactions
				for _, txn := range listing.Transactions {
					entry.ListedTotal += txn.Attributes.Amount.ValueInBaseUnits
				}
			}
			entry.Discrepancy = entry.ListedTotal - entry.Activity
			results[i] = entry
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

// buildGroup computes one root category's report node from its children and
// the budget/activity lookups.
func buildGroup(root bank.Category, children []bank.Category, budgeted, activity map[string]int64) CategoryGroup {
	group := CategoryGroup{
		ID:         root.ID,
		Name:       root.Attributes.Name,
		Categories: make([]CategoryNode, 0, len(children)),
	}
	for _, child := range children {
		node := CategoryNode{
			ID:       child.ID,
			Name:     decorateName(child.ID, child.Attributes.Name),
			Budgeted: budgeted[child.ID],
			Activity: activity[child.ID],
		}
		node.Available = node.Budgeted + node.Activity
		node.Status = deriveStatus(node.Budgeted, node.Activity)

		group.Budgeted += node.Budgeted
		group.Activity += node.Activity
		group.Categories = append(group.Categories, node)
	}
	group.Available = group.Budgeted + group.Activity
	return group
}

// deriveStatus computes the display status for a category.
// "Funded" strictly requires a positive budget: a category with nothing
// budgeted and no activity gets an empty status.
func deriveStatus(budgetedCents, activityCents int64) string {
	available := budgetedCents + activityCents
	switch {
	case available == 0 && budgetedCents > 0:
		return "Fully Spent"
	case activityCents != 0:
		spent := activityCents
		if spent < 0 {
			spent = -spent
		}
		return fmt.Sprintf("Spent %s of %s", money.FormatCents(spent), money.FormatCents(budgetedCents))
	case budgetedCents > 0:
		return "Funded"
	default:
		return ""
	}
}

// decorateName prefixes a child category name with its emoji.
func decorateName(categoryID, name string) string {
	emoji, ok := categoryEmoji[categoryID]
	if !ok {
		emoji = "💰"
	}
	if emoji == "" {
		return name
	}
	return emoji + " " + name
}

// categoryEmoji maps the bank's category slugs to display emoji.
var categoryEmoji = map[string]string{
	"games-and-software":                "🎮",
	"booze":                             "🍺",
	"events-and-gigs":                   "🎉",
	"hobbies":                           "🎨",
	"holidays-and-travel":               "✈️",
	"lottery-and-gambling":              "🎲",
	"pubs-and-bars":                     "🍻",
	"restaurants-and-cafes":             "🍽️",
	"takeaway":                          "🍔",
	"tv-and-music":                      "🎥",
	"adult":                             "🔞",
	"family":                            "👪",
	"clothing-and-accessories":          "👕",
	"education-and-student-loans":       "🎓",
	"fitness-and-wellbeing":             "🏃",
	"gifts-and-charity":                 "🎁",
	"hair-and-beauty":                   "💆‍♂️",
	"health-and-medical":                "🏥",
	"investments":                       "📈",
	"life-admin":                        "📝",
	"mobile-phone":                      "📱",
	"news-magazines-and-books":          "📰",
	"technology":                        "💻",
	"groceries":                         "🛒",
	"homeware-and-appliances":           "🛋️",
	"internet":                          "🌐",
	"home-maintenance-and-improvements": "🔧",
	"pets":                              "🐾",
	"home-insurance-and-rates":          "🏡",
	"rent-and-mortgage":                 "🏠",
	"utilities":                         "💡",
	"car-insurance-and-maintenance":     "🚗",
	"cycling":                           "🚴",
	"fuel":                              "⛽",
	"public-transport":                  "🚉",
	"car-repayments":                    "",
	"taxis-and-share-cars":              "🚕",
	"toll-roads":                        "🛣️",
}
