package economy

import (
	"fmt"
	"sort"
	"strings"

	"natanbot/bot/common"
	"natanbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// RejectionMessage explains a rejected action to the member
func RejectionMessage(o *entities.ActionOutcome) string {
	switch o.Reason {
	case entities.RejectCooldownActive:
		return fmt.Sprintf("⏳ You can use **/%s** again in %s.", o.Kind, common.FormatCooldown(o.Remaining))
	case entities.RejectInsufficientFunds:
		if o.Kind == entities.ActionWithdraw {
			return fmt.Sprintf("Your bank holds less than %s.", common.FormatCoins(o.Required))
		}
		return fmt.Sprintf("You need at least %s in your wallet for that.", common.FormatCoins(o.Required))
	case entities.RejectInsufficientItems:
		return fmt.Sprintf("You only have %d × **%s**.", o.Quantity, o.Item)
	case entities.RejectUnknownItem:
		if o.Kind == entities.ActionCrime {
			return fmt.Sprintf("**%s** isn't a crime anyone here knows how to commit.", o.CrimeKind)
		}
		return fmt.Sprintf("The shop doesn't sell **%s**. Try /shop.", o.Item)
	case entities.RejectInvalidTarget:
		return "That member can't be the target of this command."
	case entities.RejectTargetTooPoor:
		return fmt.Sprintf("Not worth it, they hold less than %s.", common.FormatCoins(o.Required))
	case entities.RejectNotPermitted:
		return "Only entrepreneurs can hire. Keep working until you become one."
	case entities.RejectEmptyCatalog:
		return "There are no jobs available in this server."
	}
	return "That didn't work."
}

// BuildOutcomeEmbed renders an applied action
func BuildOutcomeEmbed(o *entities.ActionOutcome, actorName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: common.ColorSuccess,
	}

	switch o.Kind {
	case entities.ActionDaily:
		embed.Title = "📅 Daily Reward"
		embed.Description = fmt.Sprintf("%s collected %s", actorName, common.FormatCoins(o.AmountDelta))
	case entities.ActionWork:
		embed.Title = "💼 Work"
		embed.Description = fmt.Sprintf("%s worked as **%s** and earned %s", actorName, o.JobTitle, common.FormatCoins(o.AmountDelta))
		if o.JobAssigned {
			embed.Description += fmt.Sprintf("\nYou've been hired as a **%s**!", o.JobTitle)
		}
	case entities.ActionCrime:
		embed.Title = "🦹 Crime"
		if o.Success {
			embed.Description = fmt.Sprintf("%s pulled off **%s** and got away with %s", actorName, o.CrimeKind, common.FormatCoins(o.AmountDelta))
		} else {
			embed.Color = common.ColorDanger
			embed.Description = fmt.Sprintf("%s got caught attempting **%s** and paid a fine of %s", actorName, o.CrimeKind, common.FormatCoins(-o.AmountDelta))
		}
	case entities.ActionRob:
		embed.Title = "🔫 Robbery"
		if o.Success {
			embed.Description = fmt.Sprintf("%s robbed %s and took %s", actorName, common.GetUserMention(o.TargetUserID), common.FormatCoins(o.AmountDelta))
		} else {
			embed.Color = common.ColorDanger
			embed.Description = fmt.Sprintf("%s was caught robbing %s and paid %s", actorName, common.GetUserMention(o.TargetUserID), common.FormatCoins(-o.AmountDelta))
		}
	case entities.ActionBet:
		embed.Title = "🎲 Bet"
		if o.Success {
			embed.Description = fmt.Sprintf("%s won %s", actorName, common.FormatCoins(o.AmountDelta))
		} else {
			embed.Color = common.ColorDanger
			embed.Description = fmt.Sprintf("%s lost %s", actorName, common.FormatCoins(-o.AmountDelta))
		}
	case entities.ActionLottery:
		embed.Title = "🎟️ Lottery"
		embed = lotteryEmbed(embed, o)
	case entities.ActionDeposit:
		embed.Title = "🏦 Deposit"
		embed.Description = fmt.Sprintf("Deposited %s into the bank", common.FormatCoins(-o.AmountDelta))
	case entities.ActionWithdraw:
		embed.Title = "🏦 Withdraw"
		embed.Description = fmt.Sprintf("Withdrew %s from the bank", common.FormatCoins(o.AmountDelta))
	case entities.ActionBuy:
		embed.Title = "🛒 Purchase"
		embed.Description = fmt.Sprintf("Bought %d × **%s** for %s", o.Quantity, o.Item, common.FormatCoins(-o.AmountDelta))
	case entities.ActionSell:
		embed.Title = "🛒 Sale"
		embed.Description = fmt.Sprintf("Sold %d × **%s** for %s", o.Quantity, o.Item, common.FormatCoins(o.AmountDelta))
	case entities.ActionGift:
		embed.Title = "🎁 Gift"
		embed.Description = fmt.Sprintf("%s sent %s to %s", actorName, common.FormatCoins(-o.AmountDelta), common.GetUserMention(o.TargetUserID))
	case entities.ActionGive:
		embed.Title = "🛠️ Balance Adjusted"
		embed.Color = common.ColorInfo
		embed.Description = fmt.Sprintf("%s %s", common.GetUserMention(o.TargetUserID), common.FormatSignedCoins(o.AmountDelta))
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "New Balance", Value: common.FormatCoins(o.TargetBalance), Inline: true},
		}
		return withVIPFooter(embed, o)
	case entities.ActionHire:
		embed.Title = "🤝 Hired"
		embed.Description = fmt.Sprintf("%s hired %s as an **%s**", actorName, common.GetUserMention(o.TargetUserID), o.JobTitle)
		return embed
	case entities.ActionFire:
		embed.Title = "📦 Fired"
		embed.Color = common.ColorWarning
		embed.Description = fmt.Sprintf("%s let %s go", actorName, common.GetUserMention(o.TargetUserID))
		return embed
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Wallet",
		Value:  common.FormatCoins(o.NewBalance),
		Inline: true,
	})
	if o.Kind == entities.ActionDeposit || o.Kind == entities.ActionWithdraw {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Bank",
			Value:  common.FormatCoins(o.NewBankBalance),
			Inline: true,
		})
	}
	return withVIPFooter(embed, o)
}

func lotteryEmbed(embed *discordgo.MessageEmbed, o *entities.ActionOutcome) *discordgo.MessageEmbed {
	res := o.Lottery
	if res == nil {
		return embed
	}
	if res.Prize > 0 {
		embed.Description = fmt.Sprintf("**%d** matches! You won %s", res.Matches, common.FormatCoins(res.Prize))
	} else {
		embed.Color = common.ColorWarning
		embed.Description = fmt.Sprintf("%d matches. Better luck next time.", res.Matches)
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Your Numbers", Value: joinNumbers(res.PlayerNumbers), Inline: false},
		{Name: "Drawn", Value: joinNumbers(res.DrawNumbers), Inline: false},
	}
	return embed
}

func joinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("`%02d`", n)
	}
	return strings.Join(parts, " ")
}

func withVIPFooter(embed *discordgo.MessageEmbed, o *entities.ActionOutcome) *discordgo.MessageEmbed {
	if o.VIP {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "👑 VIP bonus applied"}
	}
	return embed
}

// BuildBalanceEmbed shows wallet, bank and net worth
func BuildBalanceEmbed(snap *entities.AccountSnapshot, name string) *discordgo.MessageEmbed {
	job := snap.JobTitle
	if job == "" {
		job = "Unemployed"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Balance", name),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wallet", Value: common.FormatCoins(snap.Balance), Inline: true},
			{Name: "Bank", Value: common.FormatCoins(snap.BankBalance), Inline: true},
			{Name: "Net Worth", Value: common.FormatCoins(snap.NetWorth), Inline: true},
			{Name: "Job", Value: job, Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d", snap.Level), Inline: true},
		},
	}
	if len(snap.Employees) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Employees",
			Value:  fmt.Sprintf("%d", len(snap.Employees)),
			Inline: true,
		})
	}
	if snap.IsVIP && snap.VIPExpiry != nil {
		embed.Color = common.ColorGold
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "👑 VIP until " + snap.VIPExpiry.UTC().Format("2006-01-02 15:04 UTC"),
		}
	}
	return embed
}

// BuildInventoryEmbed lists held items alphabetically
func BuildInventoryEmbed(snap *entities.AccountSnapshot, name string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Inventory", name),
		Color: common.ColorInfo,
	}
	if len(snap.Inventory) == 0 {
		embed.Description = "Nothing here yet. Visit /shop."
		return embed
	}

	names := make([]string, 0, len(snap.Inventory))
	for item := range snap.Inventory {
		names = append(names, item)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, item := range names {
		lines = append(lines, fmt.Sprintf("**%s** × %d", item, snap.Inventory[item]))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}

// BuildShopEmbed lists the shop catalog
func BuildShopEmbed(items []entities.ShopItem) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🛒 Shop",
		Color: common.ColorInfo,
	}
	if len(items) == 0 {
		embed.Description = "The shop is empty."
		return embed
	}
	for _, it := range items {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s · %s", it.Name, common.FormatCoins(it.Price)),
			Value:  orDash(it.Description),
			Inline: false,
		})
	}
	return embed
}

// BuildJobsEmbed lists the job catalog with salary ranges
func BuildJobsEmbed(jobs []entities.Job) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "💼 Jobs",
		Color: common.ColorInfo,
	}
	for _, j := range jobs {
		name := j.Name
		if j.Restricted {
			name += " (hire only)"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  fmt.Sprintf("%s\n%s - %s", orDash(j.Description), common.FormatCoins(j.Salary.Min), common.FormatCoins(j.Salary.Max)),
			Inline: true,
		})
	}
	return embed
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
